package service

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/jung-kurt/gofpdf"

	"notepad/internal/model"
)

// RenderPDF пишет текст документа в PDF (A4, моноширинный шрифт)
func RenderPDF(w io.Writer, title, text string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetCreator(model.AppName, true)
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	pdf.SetFont("Courier", "", 10)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.MultiCell(0, 5, tr(text), "", "L", false)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

// ExportPDF сохраняет PDF в файл
func ExportPDF(path, title, text string) error {
	file, err := os.Create(path)
	if err != nil {
		return model.NewIOError("export", path, err)
	}
	if err := RenderPDF(file, title, text); err != nil {
		file.Close()
		return model.NewIOError("export", path, err)
	}
	if err := file.Close(); err != nil {
		return model.NewIOError("export", path, err)
	}
	return nil
}

// ExportTempPDF пишет PDF во временный файл для печати
func ExportTempPDF(title, text string) (string, error) {
	tmpFile, err := os.CreateTemp("", "print_*.pdf")
	if err != nil {
		return "", model.NewIOError("export", os.TempDir(), err)
	}
	path := tmpFile.Name()
	if err := RenderPDF(tmpFile, title, text); err != nil {
		tmpFile.Close()
		os.Remove(path)
		return "", model.NewIOError("export", path, err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(path)
		return "", model.NewIOError("export", path, err)
	}
	return path, nil
}

// PrintCommand команда ОС, отправляющая файл на печать
func PrintCommand(goos, filename string) *exec.Cmd {
	switch goos {
	case "windows":
		return exec.Command("rundll32", "mshtml.dll", "PrintHTML", "file:"+filename)
	default: // linux, darwin и другие unix-системы
		return exec.Command("lp", filename)
	}
}

// PrintFile отправляет файл на печать и ждет завершения команды
func PrintFile(filename string) error {
	cmd := PrintCommand(runtime.GOOS, filename)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("print %s: %w: %s", filename, err, out)
	}
	return nil
}
