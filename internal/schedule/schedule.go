// Package schedule читает табличное расписание занятий из xlsx и отдаёт
// выборки по группе, подгруппе и дню недели.
package schedule

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Schedule"

// Entry — одна строка расписания. Subgroup == 0 означает "для всей группы".
type Entry struct {
	Group    string
	Day      string // локализованное название дня недели ("Понедельник", ...)
	Time     string // строка вида "08:30-10:00"; сортировка лексикографическая
	Subgroup int
	Class    string
}

// Table — загруженное расписание. Пустая таблица валидна: все выборки
// возвращают пустой результат, "занятий нет" и "файл не прочитался"
// для вызывающего кода неразличимы (осознанное ограничение).
type Table struct {
	entries []Entry
}

// WeekDays — учебная неделя в порядке вывода (воскресенье не учебное).
var WeekDays = []string{"Понедельник", "Вторник", "Среда", "Четверг", "Пятница", "Суббота"}

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "Понедельник",
	time.Tuesday:   "Вторник",
	time.Wednesday: "Среда",
	time.Thursday:  "Четверг",
	time.Friday:    "Пятница",
	time.Saturday:  "Суббота",
	time.Sunday:    "Воскресенье",
}

// Empty — пустая таблица для деградации при ошибках загрузки.
func Empty() *Table { return &Table{} }

// New собирает таблицу из готовых записей (для тестов и альтернативных источников).
func New(entries []Entry) *Table {
	return &Table{entries: entries}
}

// Load читает лист "Schedule" из xlsx-файла. Любая проблема (нет файла,
// нет листа, нет обязательных столбцов) возвращает пустую таблицу и ошибку —
// вызывающий логирует предупреждение и продолжает без расписания.
func Load(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Empty(), fmt.Errorf("открытие %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return Empty(), fmt.Errorf("лист %s: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return Empty(), fmt.Errorf("лист %s пуст", sheetName)
	}

	// Заголовок: имена столбцов с обрезкой пробелов, как в исходном файле.
	col := map[string]int{}
	for i, name := range rows[0] {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"Group", "Day", "Time", "Subgroup", "Class"} {
		if _, ok := col[required]; !ok {
			return Empty(), fmt.Errorf("в файле %s нет столбца %s", path, required)
		}
	}

	cell := func(row []string, name string) string {
		i := col[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var entries []Entry
	for _, row := range rows[1:] {
		e := Entry{
			Group: cell(row, "Group"),
			Day:   cell(row, "Day"),
			Time:  cell(row, "Time"),
			Class: cell(row, "Class"),
		}
		if e.Group == "" && e.Class == "" {
			continue // хвостовые пустые строки листа
		}
		// Пустая подгруппа — общая пара.
		if s := cell(row, "Subgroup"); s != "" {
			n, err := strconv.Atoi(s)
			if err == nil {
				e.Subgroup = n
			}
		}
		entries = append(entries, e)
	}
	return &Table{entries: entries}, nil
}

// Len — число загруженных записей (для стартового лога).
func (t *Table) Len() int { return len(t.entries) }

// Today — занятия на сегодня, отсортированные по времени.
func (t *Table) Today(group string, subgroup int, now time.Time) []Entry {
	return t.day(group, subgroup, weekdayNames[now.Weekday()])
}

// Week — занятия на учебную неделю: день -> отсортированный список.
// Дни без занятий присутствуют в карте с пустым списком.
func (t *Table) Week(group string, subgroup int) map[string][]Entry {
	out := make(map[string][]Entry, len(WeekDays))
	for _, day := range WeekDays {
		out[day] = t.day(group, subgroup, day)
	}
	return out
}

func (t *Table) day(group string, subgroup int, day string) []Entry {
	var res []Entry
	for _, e := range t.entries {
		if !strings.EqualFold(e.Group, group) || e.Day != day {
			continue
		}
		// Общие пары видны всем, остальные — только своей подгруппе.
		if e.Subgroup != 0 && e.Subgroup != subgroup {
			continue
		}
		res = append(res, e)
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].Time < res[j].Time })
	return res
}

// FormatDay — текстовый блок "время  предмет" для сообщения.
func FormatDay(entries []Entry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.Time+"  "+e.Class)
	}
	return strings.Join(lines, "\n")
}
