package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Namaaz Tracker"
	AppID             = "com.github.zubairhyd.namaaz-tracker"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
	StoreFileName     = "namaaz.json"
	IconFile          = "Icon.png"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for the prayer log blob and log files.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating the config and cache directories.
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Prayer Domain
// -----------------------------------------------------------------------------

const (
	PrayerFajr    = "Fajr"
	PrayerDhuhr   = "Dhuhr"
	PrayerAsr     = "Asr"
	PrayerMaghrib = "Maghrib"
	PrayerIsha    = "Isha"

	// PrayerCount is the number of daily prayers tracked per date.
	PrayerCount = 5
)

// PrayerNames lists the tracked prayers in their canonical daily order.
// This order drives both store materialization and the UI layout.
var PrayerNames = []string{PrayerFajr, PrayerDhuhr, PrayerAsr, PrayerMaghrib, PrayerIsha}

// Status wire values. Anything else found in stored data is treated as StatusNone.
const (
	StatusNone       = "none"
	StatusIndividual = "individual"
	StatusJamaat     = "jamaat"
	StatusQaza       = "qaza"
)

// Point values awarded per prayer status.
const (
	PointsNone       = 0
	PointsQaza       = 2
	PointsIndividual = 3
	PointsJamaat     = 5

	// PointsJumaBonus is the flat bonus for any non-none Dhuhr on a Friday.
	// It deliberately does not scale with the status.
	PointsJumaBonus = 10
)

// -----------------------------------------------------------------------------
// Dates & Calendar
// -----------------------------------------------------------------------------

const (
	// DateKeyFormat is the canonical store key layout (ISO calendar date,
	// local calendar, no timezone component).
	DateKeyFormat = "2006-01-02"

	DaysPerWeek   = 7
	MonthsPerYear = 12

	// MonthTitleFormat renders the main window header, e.g. "January 2026".
	MonthTitleFormat = "January 2006"

	// DayTitleFormat renders the day detail dialog title.
	DayTitleFormat = "Monday, 2 January 2006"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	MainWinWidth  = 520
	MainWinHeight = 560

	YearWinWidth  = 640
	YearWinHeight = 480

	SettingsWindowWidth = 480

	YearGridColumns     = 3
	LayoutColumnsDouble = 2

	// Year Overview Table
	ColIDMonth    = 0
	ColIDFullDays = 1
	ColIDPercent  = 2

	ColWidthMonth    = 220
	ColWidthFullDays = 160
	ColWidthPercent  = 160

	TablePlaceholder = "Cell Content"

	// Sorting Indicators
	SortIconAsc  = " ▲"
	SortIconDesc = " ▼"

	// Preference Keys
	PrefLanguage    = "language"
	PrefServerPort  = "server_port"
	PrefFeedEnabled = "feed_enabled"
	PrefLastRun     = "last_run_version"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle     = "win_title"
	TKeyWinYear      = "win_year_title"
	TKeyWinSettings  = "win_settings_title"
	TKeyBtnToday     = "btn_today"
	TKeyBtnYearView  = "btn_year_view"
	TKeyBtnSettings  = "btn_settings"
	TKeyBtnSave      = "btn_save"
	TKeyBtnCancel    = "btn_cancel"
	TKeyBtnClose     = "btn_close"
	TKeyStatsPoints  = "stats_total_points" // Requires Points
	TKeyStatsStreak  = "stats_streak"       // Requires Count > 0
	TKeyStatsStreak0 = "stats_streak_zero"  // Explicit key for 0

	TKeyPrayerFajr    = "prayer_fajr"
	TKeyPrayerDhuhr   = "prayer_dhuhr"
	TKeyPrayerAsr     = "prayer_asr"
	TKeyPrayerMaghrib = "prayer_maghrib"
	TKeyPrayerIsha    = "prayer_isha"

	TKeyStatusNone       = "status_none"
	TKeyStatusIndividual = "status_individual"
	TKeyStatusJamaat     = "status_jamaat"
	TKeyStatusQaza       = "status_qaza"

	TKeyDayPoints = "day_points"    // Requires Points
	TKeyJumaHint  = "day_juma_hint" // Friday Dhuhr bonus explanation

	TKeyWeekdaySun = "weekday_sun"
	TKeyWeekdayMon = "weekday_mon"
	TKeyWeekdayTue = "weekday_tue"
	TKeyWeekdayWed = "weekday_wed"
	TKeyWeekdayThu = "weekday_thu"
	TKeyWeekdayFri = "weekday_fri"
	TKeyWeekdaySat = "weekday_sat"

	TKeyYearFullDays = "year_full_days" // Requires Count
	TKeyColMonth     = "col_month"
	TKeyColFullDays  = "col_full_days"
	TKeyColPercent   = "col_percent"

	TKeyLblLanguage   = "lbl_language"
	TKeyHelpLanguage  = "help_language"
	TKeyLblGeneral    = "lbl_general"
	TKeyLblFeed       = "lbl_feed"
	TKeyLblEnableFeed = "lbl_enable_feed"
	TKeyHelpFeed      = "help_feed"
	TKeyLblPort       = "lbl_server_port"
	TKeyHelpPort      = "help_port"
	TKeyLblFooter     = "lbl_footer" // Requires Version

	TKeyNotifSaveError = "notif_err_save"
	TKeyFeedSummary    = "feed_summary" // Requires Points

	// Validation Errors (UI)
	TKeyErrPortReq   = "err_port_required"
	TKeyErrPortNum   = "err_port_number"
	TKeyErrPortRange = "err_port_range"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultPort     = "18090"
	DefaultLanguage = "en"

	// UIDSalt is the salt for deterministic feed event UID generation.
	UIDSalt = "namaaz-tracker-v1-"

	// DayChangeCheckInterval is how often the rollover worker compares the
	// current calendar date against the last rendered one.
	DayChangeCheckInterval = time.Minute
)

// -----------------------------------------------------------------------------
// Standards: iCalendar Feed
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion = "2.0"
	ICalProdid  = "-//Namaaz Tracker//Feed//EN"
	ICalCalName = "Namaaz Tracker"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "namaaztracker"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropRefresh    = "REFRESH-INTERVAL"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	DefaultICalRefresh = 12 * time.Hour
)

// -----------------------------------------------------------------------------
// Data Formats & Limits
// -----------------------------------------------------------------------------

const (
	// Limits
	MinPort = 1
	MaxPort = 65535

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s"
	FormatUID       = "%s@%s"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	RetryAfterSeconds  = "10"
	AllowedMethods     = "GET, HEAD"
	RouteRoot          = "/"
	AddrSeparator      = ":"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType  = "Content-Type"
	HeaderCacheControl = "Cache-Control"
	HeaderETag         = "ETag"
	HeaderRetryAfter   = "Retry-After"
	HeaderAllow        = "Allow"
	HeaderXContentType = "X-Content-Type-Options"
	HeaderIfNoneMatch  = "If-None-Match"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrServerStartup  = "feed server startup failed"
	ErrServerShutdown = "feed server shutdown failed"
	ErrPortRequired   = "feed server port is required"
	ErrStoreLoad      = "failed to read prayer log blob"
	ErrStoreDecode    = "failed to decode prayer log blob"
	ErrStoreEncode    = "failed to encode prayer log"
	ErrStoreSave      = "failed to persist prayer log"
	ErrUnknownPrayer  = "unknown prayer name"
	ErrDateParse      = "unable to parse date key"
	ErrICalEncode     = "failed to encode iCalendar feed"
	ErrLogFile        = "failed to open log file"
	ErrCacheDir       = "could not determine user cache dir"
	ErrConfigDir      = "could not determine user config dir"
	ErrCreateDir      = "could not create app directory"
	ErrAppFailed      = "application failed unexpectedly"
	ErrWriteResp      = "failed to write response body"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
	ErrLocNotInit     = "localizer not initialized"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Calendar feed initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Fallbacks & Defaults
// -----------------------------------------------------------------------------

const (
	// FallbackFeedSummary expects the total points for the day.
	FallbackFeedSummary = "All prayers completed (%d pts)"

	FallbackStatsPoints     = "Total: %d pts"
	FallbackStatsStreak     = "%d-day streak"
	FallbackStatsStreakZero = "No streak yet"

	// Month grid cell captions: day number alone, or with completion.
	FormatDayOnly = "%d"
	FormatDayCell = "%d · %d/%d"
	StatsSpacer   = "    "

	FormatDayPoints    = "%d pts"
	FormatYearFullDays = "%d full days"
	FormatPercent      = "%d%%"

	LogMsgSorted = "Year overview sorted"

	// StubVCalendar is the minimal valid iCalendar object used when no
	// fully-completed day exists yet. Clients reject empty feeds otherwise.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	TitleStartupError = "Startup Error"
	TitleSaveError    = "Save Error"

	MsgPortBusy    = "Port %s is busy or unavailable."
	MsgLogWarning  = "Warning: %s at %s: %v\n"
	MsgAppStop     = "Application stopped gracefully"
	MsgCtxCancel   = "Context cancelled, shutting down UI"
	MsgAppStarting = "Starting application"

	MsgStoreLoaded     = "Prayer log hydrated"
	MsgStoreMissing    = "No prayer log found, starting empty"
	MsgStoreCorrupt    = "Prayer log unreadable, starting empty"
	MsgStoreNormalized = "Normalized unrecognized status"
	MsgStoreSaved      = "Prayer log persisted"
	MsgDayMaterialized = "Day materialized"
	MsgStatusSet       = "Prayer status updated"
	MsgSkippedDay      = "Skipping malformed date key"

	MsgFeedRebuilt  = "Calendar feed rebuilt"
	MsgFeedDisabled = "Calendar feed disabled, skipping rebuild"
	MsgFeedSuccess  = "Feed generation successful"

	MsgServerListen = "Feed server listening"
	MsgServerStop   = "Shutting down feed server..."
	MsgCacheUpdated = "Feed cache updated"

	MsgWorkerStart  = "Day-change worker started"
	MsgWorkerStop   = "Day-change worker stopping due to context cancellation"
	MsgDayRollover  = "Local date changed, re-rendering"
	MsgOpenDay      = "Opening day detail"
	MsgOpenYear     = "Opening year overview"
	MsgOpenSettings = "Opening settings window"
	MsgSavePrefs    = "Saving preferences"

	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyDate      = "date_key"
	LogKeyPrayer    = "prayer"
	LogKeyStatus    = "status"
	LogKeyPoints    = "points"
	LogKeyStreak    = "streak"
	LogKeyTotal     = "total_points"
	LogKeyDays      = "days_logged"
	LogKeyEvents    = "events"
	LogKeyCount     = "count"
	LogKeyValue     = "value"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyStats     = "stats"
	LogKeyDuration  = "duration_ms"
	LogKeySortCol   = "sort_column"
	LogKeySortAsc   = "sort_asc"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI     = "ui"
	CompUISet  = "ui_settings"
	CompEngine = "engine"
	CompStore  = "store"
	CompExport = "export"
	CompServer = "server"
	CompWorker = "worker"
	CompMain   = "main"
	CompI18n   = "i18n"
)
