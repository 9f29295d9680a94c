package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ilinovom/company-info-bot/internal/directory"
	"github.com/ilinovom/company-info-bot/internal/model"
)

const noRosterText = "Файл сотрудников не найден или пуст."

// StaffService builds command replies from the employee roster. A missing
// roster is a user-facing "no data" reply, never an error.
type StaffService struct {
	dir directory.Directory
}

func NewStaffService(dir directory.Directory) *StaffService {
	return &StaffService{dir: dir}
}

// Departments lists the unique departments.
func (s *StaffService) Departments() (string, error) {
	depts, err := s.dir.Departments()
	if errors.Is(err, directory.ErrUnavailable) {
		return noRosterText, nil
	}
	if err != nil {
		return "", err
	}
	if len(depts) == 0 {
		return "Отделы не найдены.", nil
	}
	lines := []string{"Отделы:"}
	for _, d := range depts {
		lines = append(lines, "- "+d)
	}
	return strings.Join(lines, "\n"), nil
}

// Staff lists employees, optionally filtered by department substring.
func (s *StaffService) Staff(department string) (string, error) {
	rows, err := s.dir.Staff(department)
	if errors.Is(err, directory.ErrUnavailable) {
		return noRosterText, nil
	}
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "Сотрудники не найдены по заданному фильтру.", nil
	}
	return joinEmployees("Сотрудники:", rows), nil
}

// Find searches name, department and position.
func (s *StaffService) Find(query string) (string, error) {
	rows, err := s.dir.Find(query)
	if errors.Is(err, directory.ErrUnavailable) {
		return noRosterText, nil
	}
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "Ничего не найдено.", nil
	}
	return joinEmployees("Найдено:", rows), nil
}

func joinEmployees(title string, rows []model.Employee) string {
	lines := []string{title}
	for _, e := range rows {
		lines = append(lines, fmt.Sprintf(
			"- %s — %s (%s)\n  email: %s, phone: %s",
			e.Name, e.Position, e.Department, e.Email, e.Phone,
		))
	}
	return strings.Join(lines, "\n")
}
