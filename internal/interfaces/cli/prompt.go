package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Validator valida una entrada cruda del operador; el error lleva el mensaje
// a mostrar antes de volver a preguntar.
type Validator func(s string) error

// Prompter implementa el ciclo preguntar-validar-reintentar sobre un reader
// de línea. Ante entrada inválida imprime el mensaje y vuelve a preguntar;
// nunca muta estado. Solo retorna error si la entrada se agota (EOF).
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter construye el prompter; in suele ser os.Stdin y out os.Stdout.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

func (p *Prompter) read() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// Line pide una línea hasta que todos los validadores pasen.
func (p *Prompter) Line(label string, validators ...Validator) (string, error) {
	for {
		fmt.Fprint(p.out, label)
		s, err := p.read()
		if err != nil {
			return "", err
		}
		if msg := firstFailure(s, validators); msg != "" {
			fmt.Fprintln(p.out, msg)
			continue
		}
		return s, nil
	}
}

// Int pide un entero. field nombra el campo en los mensajes de vacío y de
// formato ("Quantity cannot be empty!", "Quantity must be a number!"); el
// validador opcional agrega reglas de dominio con su propio mensaje.
func (p *Prompter) Int(label, field string, validate func(n int) error) (int, error) {
	for {
		fmt.Fprint(p.out, label)
		s, err := p.read()
		if err != nil {
			return 0, err
		}
		if s == "" {
			fmt.Fprintf(p.out, "%s cannot be empty!\n", field)
			continue
		}
		n, convErr := strconv.Atoi(s)
		if convErr != nil {
			fmt.Fprintf(p.out, "%s must be a number!\n", field)
			continue
		}
		if validate != nil {
			if err := validate(n); err != nil {
				fmt.Fprintln(p.out, err)
				continue
			}
		}
		return n, nil
	}
}

// Decimal pide un número real (costo); mismos mensajes de vacío/formato que
// Int, con validación de dominio opcional.
func (p *Prompter) Decimal(label, field string, validate func(d decimal.Decimal) error) (decimal.Decimal, error) {
	for {
		fmt.Fprint(p.out, label)
		s, err := p.read()
		if err != nil {
			return decimal.Zero, err
		}
		if s == "" {
			fmt.Fprintf(p.out, "%s cannot be empty!\n", field)
			continue
		}
		d, convErr := decimal.NewFromString(s)
		if convErr != nil {
			fmt.Fprintf(p.out, "%s must be a number!\n", field)
			continue
		}
		if validate != nil {
			if err := validate(d); err != nil {
				fmt.Fprintln(p.out, err)
				continue
			}
		}
		return d, nil
	}
}

// YesNo pide una confirmación yes/no (insensible a mayúsculas).
func (p *Prompter) YesNo(label string) (bool, error) {
	for {
		fmt.Fprint(p.out, label)
		s, err := p.read()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(s) {
		case "":
			fmt.Fprintln(p.out, "Input cannot be empty!")
		case "yes":
			return true, nil
		case "no":
			return false, nil
		default:
			fmt.Fprintln(p.out, "Please enter 'yes' or 'no'")
		}
	}
}

// Choice pide una opción dentro de un conjunto cerrado ("1", "2", ...).
func (p *Prompter) Choice(label string, allowed ...string) (string, error) {
	for {
		fmt.Fprint(p.out, label)
		s, err := p.read()
		if err != nil {
			return "", err
		}
		if s == "" {
			fmt.Fprintln(p.out, "Choice cannot be empty!")
			continue
		}
		for _, a := range allowed {
			if s == a {
				return s, nil
			}
		}
		fmt.Fprintf(p.out, "Invalid choice! Please enter %s.\n", strings.Join(allowed, " or "))
	}
}

// Pause espera a que el operador presione Enter.
func (p *Prompter) Pause(label string) {
	fmt.Fprint(p.out, label)
	_, _ = p.read()
}

func firstFailure(s string, validators []Validator) string {
	for _, v := range validators {
		if err := v(s); err != nil {
			return err.Error()
		}
	}
	return ""
}

// NotEmpty rechaza la cadena vacía con el mensaje dado.
func NotEmpty(msg string) Validator {
	return func(s string) error {
		if s == "" {
			return errors.New(msg)
		}
		return nil
	}
}

// NoDigits rechaza cadenas con dígitos (nombres de persona, país de origen).
func NoDigits(msg string) Validator {
	return func(s string) error {
		for _, r := range s {
			if unicode.IsDigit(r) {
				return errors.New(msg)
			}
		}
		return nil
	}
}
