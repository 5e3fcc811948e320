// Package console implementa la interfaz interactiva de texto: menú, lectura
// de respuestas y validación de entrada. Mantiene un único caso de uso de venta
// durante toda la ejecución y procesa un comando a la vez.
package console

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/venta-consola/internal/application/sales"
	"github.com/jhoicas/venta-consola/internal/domain"
	"github.com/jhoicas/venta-consola/pkg/logger"
)

// errTooManyAttempts se retorna cuando el usuario agota los reintentos de un campo.
var errTooManyAttempts = errors.New("demasiados intentos inválidos")

// MoneyFormatter formatea montos para mostrar (ver pkg/money).
type MoneyFormatter interface {
	Format(amount decimal.Decimal) string
}

// Deps dependencias de la consola.
type Deps struct {
	Sales       *sales.SaleUseCase
	In          io.Reader
	Out         io.Writer
	Money       MoneyFormatter
	DateLayout  string
	MaxAttempts int
	ReportDir   string
	Logger      *logger.Logger
	WriteFile   func(name string, data []byte) error // persiste el PDF; nil = os.WriteFile
}

// Console bucle de comandos sobre la venta de la sesión.
type Console struct {
	uc          *sales.SaleUseCase
	in          io.Reader
	out         io.Writer
	money       MoneyFormatter
	dates       DateParser
	maxAttempts int
	reportDir   string
	log         *logger.Logger
	writeFile   func(name string, data []byte) error

	lines <-chan inputLine
}

// New construye la consola aplicando valores por defecto.
func New(d Deps) *Console {
	c := &Console{
		uc:          d.Sales,
		in:          d.In,
		out:         d.Out,
		money:       d.Money,
		dates:       DateParser{Layout: d.DateLayout},
		maxAttempts: d.MaxAttempts,
		reportDir:   d.ReportDir,
		log:         d.Logger,
		writeFile:   d.WriteFile,
	}
	if c.dates.Layout == "" {
		c.dates.Layout = "2006-01-02"
	}
	if c.maxAttempts <= 0 {
		c.maxAttempts = 3
	}
	if c.reportDir == "" {
		c.reportDir = "."
	}
	if c.log == nil {
		c.log = logger.Nop()
	}
	if c.writeFile == nil {
		c.writeFile = func(name string, data []byte) error {
			return os.WriteFile(name, data, 0o644)
		}
	}
	return c
}

// Run ejecuta el bucle hasta que el usuario sale, la entrada se cierra (EOF) o
// ctx se cancela. Solo en este último caso retorna error (ctx.Err()).
func (c *Console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	c.lines = scanLines(ctx, c.in)

	for {
		c.renderMenu()

		line, err := c.readLine(ctx)
		if err != nil && !errors.Is(err, domain.ErrInvalidInput) {
			return c.finish(err)
		}
		opt, err := ParseInt(line)
		if err != nil {
			c.println("Opción inválida. Intente de nuevo.\n")
			continue
		}
		if opt == optionExit {
			c.println("¡Hasta luego!")
			return nil
		}

		if err := c.dispatch(ctx, opt); err != nil {
			switch {
			case errors.Is(err, errTooManyAttempts):
				c.println("Demasiados intentos inválidos. Operación cancelada.\n")
			default:
				return c.finish(err)
			}
		}
	}
}

func (c *Console) dispatch(ctx context.Context, opt int) error {
	switch opt {
	case optionListCustomers:
		c.listCustomers()
		return nil
	case optionUpdateCustomer:
		return c.updateCustomer(ctx)
	case optionRemoveCustomer:
		return c.removeCustomer(ctx)
	case optionRegisterCustomer:
		return c.registerCustomer(ctx)
	case optionAddProduct:
		return c.addProduct(ctx)
	case optionRecordLineItem:
		return c.recordLineItem(ctx)
	case optionSummary:
		c.showSummary()
		return nil
	case optionExportPDF:
		return c.exportPDF(ctx)
	default:
		c.println("Opción inválida. Intente de nuevo.\n")
		return nil
	}
}

func (c *Console) finish(err error) error {
	if errors.Is(err, io.EOF) {
		c.log.Debug().Msg("entrada cerrada, fin de la sesión")
		return nil
	}
	return err
}

// ── Entrada ───────────────────────────────────────────────────────────────────

// maxLineBytes longitud máxima de una línea de entrada.
const maxLineBytes = 64 * 1024

// errLineTooLong línea descartada por superar maxLineBytes; se trata como entrada inválida.
var errLineTooLong = fmt.Errorf("%w: línea de más de %d bytes", domain.ErrInvalidInput, maxLineBytes)

// inputLine una línea leída o el error que cortó la lectura.
type inputLine struct {
	text string
	err  error
}

// scanLines lee r en una goroutine para que la espera de entrada respete ctx.
// Un error de lectura distinto de EOF se entrega como última línea.
func scanLines(ctx context.Context, r io.Reader) <-chan inputLine {
	lines := make(chan inputLine)
	go func() {
		defer close(lines)
		br := bufio.NewReader(r)
		for {
			text, err := readBoundedLine(br, maxLineBytes)
			if errors.Is(err, io.EOF) {
				return
			}
			select {
			case lines <- inputLine{text: text, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil && !errors.Is(err, errLineTooLong) {
				return
			}
		}
	}()
	return lines
}

// readBoundedLine lee hasta '\n' sin el separador. Si la línea supera limit
// bytes se consume completa y se retorna errLineTooLong.
func readBoundedLine(br *bufio.Reader, limit int) (string, error) {
	var buf []byte
	tooLong, read := false, false
	for {
		chunk, err := br.ReadSlice('\n')
		read = read || len(chunk) > 0
		if !tooLong {
			buf = append(buf, chunk...)
			if len(bytes.TrimRight(buf, "\r\n")) > limit {
				tooLong, buf = true, nil
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil && !(errors.Is(err, io.EOF) && read) {
			return "", err
		}
		break
	}
	if tooLong {
		return "", errLineTooLong
	}
	return strings.TrimRight(string(buf), "\r\n"), nil
}

func (c *Console) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		if line.err != nil {
			if errors.Is(line.err, errLineTooLong) {
				c.log.Warn().Int("max_bytes", maxLineBytes).Msg("línea de entrada descartada por longitud")
			} else {
				c.log.Error().Err(line.err).Msg("lectura de entrada fallida")
			}
			return "", line.err
		}
		return line.text, nil
	}
}

// ask muestra prompt y repite la pregunta mientras la lectura o parse devuelvan
// domain.ErrInvalidInput, hasta maxAttempts veces.
func ask[T any](ctx context.Context, c *Console, prompt string, parse func(string) (T, error)) (T, error) {
	var zero T
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		c.println(prompt)
		line, err := c.readLine(ctx)
		if err == nil {
			var v T
			if v, err = parse(line); err == nil {
				return v, nil
			}
		}
		if !errors.Is(err, domain.ErrInvalidInput) {
			return zero, err
		}
		c.log.Debug().Err(err).Int("attempt", attempt).Msg("entrada inválida")
		c.printf("%s. Intente de nuevo.\n", err)
	}
	return zero, errTooManyAttempts
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

// reportPath ruta destino del PDF exportado.
func (c *Console) reportPath(filename string) string {
	return filepath.Join(c.reportDir, filename)
}
