package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ZubairHyd/Namaaz-Tracker/internal/config"
)

// settingsWidgets holds references to UI elements to simplify data retrieval during save.
type settingsWidgets struct {
	langSelect *widget.Select
	checkFeed  *widget.Check
	entryPort  *NumericalEntry
}

// ShowSettingsWindow displays the configuration dialog.
func (app *NamaazApp) ShowSettingsWindow() {
	if app.settingsWindow != nil {
		slog.Debug(config.MsgOpenSettings, config.LogKeyComponent, config.CompUISet)
		app.settingsWindow.RequestFocus()
		return
	}

	slog.Info(config.MsgOpenSettings, config.LogKeyComponent, config.CompUISet)
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinSettings))
	app.settingsWindow = w

	sw := &settingsWidgets{}

	// --- 1. Language ---
	sw.langSelect = widget.NewSelect(app.SupportedLanguages, nil)
	sw.langSelect.SetSelected(app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage))

	itemLang := widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), sw.langSelect)
	itemLang.HintText = app.GetMsg(config.TKeyHelpLanguage)

	generalForm := widget.NewForm(itemLang)
	generalCard := widget.NewCard(app.GetMsg(config.TKeyLblGeneral), "", generalForm)

	// --- 2. Feed Section ---
	sw.checkFeed = widget.NewCheck(app.GetMsg(config.TKeyLblEnableFeed), nil)
	sw.checkFeed.Checked = app.Preferences.Bool(config.PrefFeedEnabled)

	// Port: Numerical only, but requires strict validation (range 1-65535).
	sw.entryPort = NewNumericalEntry()
	sw.entryPort.SetText(app.Preferences.StringWithFallback(config.PrefServerPort, config.DefaultPort))
	sw.entryPort.Validator = func(s string) error {
		if s == "" {
			return errors.New(app.GetMsg(config.TKeyErrPortReq))
		}
		port, err := strconv.Atoi(s)
		if err != nil {
			return errors.New(app.GetMsg(config.TKeyErrPortNum))
		}
		if port < config.MinPort || port > config.MaxPort {
			return errors.New(app.GetMsg(config.TKeyErrPortRange))
		}
		return nil
	}

	itemPort := widget.NewFormItem(app.GetMsg(config.TKeyLblPort), sw.entryPort)
	itemPort.HintText = app.GetMsg(config.TKeyHelpPort)

	feedForm := widget.NewForm(itemPort)
	feedHint := widget.NewLabel(app.GetMsg(config.TKeyHelpFeed))
	feedHint.Wrapping = fyne.TextWrapWord
	feedCard := widget.NewCard(app.GetMsg(config.TKeyLblFeed), "",
		container.NewVBox(sw.checkFeed, feedForm, feedHint))

	// --- Actions ---
	saveAction := func() {
		// Only the port field has a strict requirement that blocks saving.
		if err := sw.entryPort.Validate(); err != nil {
			dialog.ShowError(err, w)
			return
		}
		app.saveSettings(sw, w)
	}

	btnSave := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), theme.DocumentSaveIcon(), saveAction)
	btnSave.Importance = widget.HighImportance
	btnCancel := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), func() { w.Close() })

	// --- Footer ---
	footerText := fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version)
	footerLabel := widget.NewLabel(footerText)
	footerLabel.Alignment = fyne.TextAlignCenter
	footerLabel.TextStyle = fyne.TextStyle{Italic: true}

	paddedContent := container.NewPadded(container.NewVBox(
		generalCard,
		feedCard,
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnCancel, btnSave),
		footerLabel,
	))

	w.SetContent(paddedContent)
	w.Resize(fyne.NewSize(config.SettingsWindowWidth, paddedContent.MinSize().Height))
	w.SetFixedSize(true)
	w.SetOnClosed(func() { app.settingsWindow = nil })
	w.Show()
}

// saveSettings persists the preferences and re-applies them where possible.
// The feed port and enablement take effect on the next launch; the hint text
// says so.
func (app *NamaazApp) saveSettings(sw *settingsWidgets, w fyne.Window) {
	slog.Info(config.MsgSavePrefs, config.LogKeyComponent, config.CompUISet)

	app.Preferences.SetString(config.PrefLanguage, sw.langSelect.Selected)
	app.Preferences.SetBool(config.PrefFeedEnabled, sw.checkFeed.Checked)
	if sw.entryPort.Text != "" {
		app.Preferences.SetString(config.PrefServerPort, sw.entryPort.Text)
	}

	// Re-apply everything language-dependent.
	app.UpdateLocalizer()
	app.rebuildMainContent()
	app.RefreshAll()
	app.rebuildFeed()

	w.Close()
}
