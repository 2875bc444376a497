package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/AndersBNielsen/firestarter-app/internal/programmer"
)

// TransferView renders an in-place progress bar for a bulk chip transfer.
// It is driven directly by the programmer's progress callback; there is no
// event loop because the serial exchange is strictly sequential.
type TransferView struct {
	bar   progress.Model
	style lipgloss.Style
}

// NewTransferView creates a progress renderer.
func NewTransferView() *TransferView {
	return &TransferView{
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(40),
		),
		style: DefaultStyles().Muted,
	}
}

// Callback returns a ProgressCallback that redraws the bar on each chunk.
func (v *TransferView) Callback() programmer.ProgressCallback {
	return func(p programmer.Progress) {
		detail := fmt.Sprintf(" %3d%%  0x%X - 0x%X", p.Percentage, p.FromAddress, p.ToAddress)
		fmt.Printf("\r%s%s", v.bar.ViewAs(float64(p.Percentage)/100), v.style.Render(detail))
	}
}

// Done terminates the progress line.
func (v *TransferView) Done() {
	fmt.Println()
}
