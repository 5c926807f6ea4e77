/*
menu.go - The interactive payroll menu loop

PURPOSE:
  Drives the whole program: show the menu, read a bounded choice,
  dispatch to the department registry, render results and errors in the
  original Russian prompts.

ERROR HANDLING:
  Domain failures (duplicate name, invalid rate, empty list) are
  displayed as "Ошибка расчёта зарплаты: ..." and the loop continues.
  Anything else is displayed as "Непредвиденная ошибка: ..." and the
  loop also continues; no failure short of input exhaustion ends the
  process.

SEE ALSO:
  - input.go: Validated field readers
  - payroll/department.go: Operations behind choices 1-3
*/
package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/warp/payroll-registry/payroll"
)

const menuBanner = `
===== МЕНЮ ОТДЕЛА РАСЧЁТА ЗАРПЛАТЫ =====
1. Добавить тип работ
2. Показать все типы работ
3. Вычислить среднюю величину оплаты
0. Выход
========================================`

// Menu is the interactive loop over a department registry.
type Menu struct {
	in   *Reader
	out  io.Writer
	dept *payroll.Department
}

func NewMenu(in io.Reader, out io.Writer, dept *payroll.Department) *Menu {
	return &Menu{
		in:   NewReader(in, out),
		out:  out,
		dept: dept,
	}
}

// Run loops until the user picks 0 or the input source is exhausted.
func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(m.out, menuBanner)

		choice, err := m.in.MenuChoice("Ваш выбор: ", 0, 3)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if choice == 0 {
			fmt.Fprintln(m.out, "Выход из программы.")
			return nil
		}

		if err := m.dispatch(ctx, choice); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if payroll.IsDomainError(err) {
				fmt.Fprintf(m.out, "Ошибка расчёта зарплаты: %s\n", err)
			} else {
				fmt.Fprintf(m.out, "Непредвиденная ошибка: %s\n", err)
			}
		}
	}
}

func (m *Menu) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case 1:
		return m.addWorkType(ctx)
	case 2:
		return m.listAll(ctx)
	case 3:
		return m.averagePay(ctx)
	}
	return nil
}

func (m *Menu) addWorkType(ctx context.Context) error {
	name, err := m.in.NonEmptyString("Введите название типа работ: ")
	if err != nil {
		return err
	}
	basePay, err := m.in.PositiveDecimal("Введите базовую оплату: ")
	if err != nil {
		return err
	}
	bonusPercent, err := m.in.NonNegativeDecimal("Введите надбавку в процентах (0 если нет): ")
	if err != nil {
		return err
	}

	if err := m.dept.AddWorkType(ctx, name, basePay, bonusPercent); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Тип работ успешно добавлен.")
	return nil
}

func (m *Menu) listAll(ctx context.Context) error {
	listings, err := m.dept.ListAll(ctx)
	if err != nil {
		if errors.Is(err, payroll.ErrEmptyWorkList) {
			fmt.Fprintln(m.out, "Список типов работ пуст.")
			return nil
		}
		return err
	}

	fmt.Fprintln(m.out, "Текущие типы работ:")
	for _, l := range listings {
		fmt.Fprintf(m.out, "  - %s | базовая оплата: %s | с надбавкой: %s\n",
			l.Name, l.BasePay, l.FinalPay)
	}
	return nil
}

func (m *Menu) averagePay(ctx context.Context) error {
	avg, err := m.dept.AveragePay(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Средняя величина оплаты: %s\n", avg.StringFixed(2))
	return nil
}
