package termcard

import (
	"image/color"

	"github.com/danielgatis/go-ansicode"
)

// noopHandler ignores every decoder callback. Handlers embed it and override
// only the sequences they care about.
type noopHandler struct{}

var _ ansicode.Handler = noopHandler{}

func (noopHandler) ApplicationCommandReceived(data []byte) {}
func (noopHandler) Backspace() {}
func (noopHandler) Bell() {}
func (noopHandler) CarriageReturn() {}
func (noopHandler) CellSizePixels() {}
func (noopHandler) ClearLine(mode ansicode.LineClearMode) {}
func (noopHandler) ClearScreen(mode ansicode.ClearMode) {}
func (noopHandler) ClearTabs(mode ansicode.TabulationClearMode) {}
func (noopHandler) ClipboardLoad(clipboard byte, terminator string) {}
func (noopHandler) ClipboardStore(clipboard byte, data []byte) {}
func (noopHandler) ConfigureCharset(index ansicode.CharsetIndex, charset ansicode.Charset) {}
func (noopHandler) Decaln() {}
func (noopHandler) DeleteChars(n int) {}
func (noopHandler) DeleteLines(n int) {}
func (noopHandler) DeviceStatus(n int) {}
func (noopHandler) EraseChars(n int) {}
func (noopHandler) Goto(row, col int) {}
func (noopHandler) GotoCol(col int) {}
func (noopHandler) GotoLine(row int) {}
func (noopHandler) HorizontalTabSet() {}
func (noopHandler) IdentifyTerminal(b byte) {}
func (noopHandler) Input(r rune) {}
func (noopHandler) InsertBlank(n int) {}
func (noopHandler) InsertBlankLines(n int) {}
func (noopHandler) LineFeed() {}
func (noopHandler) MoveBackward(n int) {}
func (noopHandler) MoveBackwardTabs(n int) {}
func (noopHandler) MoveDown(n int) {}
func (noopHandler) MoveDownCr(n int) {}
func (noopHandler) MoveForward(n int) {}
func (noopHandler) MoveForwardTabs(n int) {}
func (noopHandler) MoveUp(n int) {}
func (noopHandler) MoveUpCr(n int) {}
func (noopHandler) PopKeyboardMode(n int) {}
func (noopHandler) PopTitle() {}
func (noopHandler) PrivacyMessageReceived(data []byte) {}
func (noopHandler) PushKeyboardMode(mode ansicode.KeyboardMode) {}
func (noopHandler) PushTitle() {}
func (noopHandler) ReportKeyboardMode() {}
func (noopHandler) ReportModifyOtherKeys() {}
func (noopHandler) ResetColor(i int) {}
func (noopHandler) ResetState() {}
func (noopHandler) RestoreCursorPosition() {}
func (noopHandler) ReverseIndex() {}
func (noopHandler) SaveCursorPosition() {}
func (noopHandler) ScrollDown(n int) {}
func (noopHandler) ScrollUp(n int) {}
func (noopHandler) SetActiveCharset(n int) {}
func (noopHandler) SetColor(index int, c color.Color) {}
func (noopHandler) SetCursorStyle(style ansicode.CursorStyle) {}
func (noopHandler) SetDynamicColor(prefix string, index int, terminator string) {}
func (noopHandler) SetHyperlink(hyperlink *ansicode.Hyperlink) {}
func (noopHandler) SetKeyboardMode(mode ansicode.KeyboardMode, behavior ansicode.KeyboardModeBehavior) {}
func (noopHandler) SetKeypadApplicationMode() {}
func (noopHandler) SetMode(mode ansicode.TerminalMode) {}
func (noopHandler) SetModifyOtherKeys(modify ansicode.ModifyOtherKeys) {}
func (noopHandler) SetScrollingRegion(top, bottom int) {}
func (noopHandler) SetTerminalCharAttribute(attr ansicode.TerminalCharAttribute) {}
func (noopHandler) SetTitle(title string) {}
func (noopHandler) SetWorkingDirectory(uri string) {}
func (noopHandler) ShellIntegrationMark(mark ansicode.ShellIntegrationMark, exitCode int) {}
func (noopHandler) SixelReceived(params [][]uint16, data []byte) {}
func (noopHandler) StartOfStringReceived(data []byte) {}
func (noopHandler) Substitute() {}
func (noopHandler) Tab(n int) {}
func (noopHandler) TextAreaSizeChars() {}
func (noopHandler) TextAreaSizePixels() {}
func (noopHandler) UnsetKeypadApplicationMode() {}
func (noopHandler) UnsetMode(mode ansicode.TerminalMode) {}
