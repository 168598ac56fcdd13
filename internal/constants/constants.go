package constants

import "time"

const (
	AppName            = "dawg"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/dawg/dawg.db"
	DefaultSettings    = "~/.config/dawg/settings.yaml"
	Version            = "v0.3.0"

	// StateKey is the key the serialized application state is stored under.
	StateKey = "dawgAppData"

	// ConnectionEnvVar overrides the PostgreSQL connection string.
	ConnectionEnvVar = "DAWG_DB_CONNECTION"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "dawg-"

	// Notify constants
	NotifierLockfileName   = "dawg-notifier.lock"
	NotificationDurationMs = 4000
	TrayAppIdentifier      = "com.julianstephens.dawg"
	TrayProcessName        = "dawg-tray"
)

// Pacing of the user-visible transitions. None of these affect correctness.
const (
	DefaultHoldDuration       = 2000 * time.Millisecond
	DefaultHoldRepeatDelay    = 1200 * time.Millisecond
	DefaultHoldReleaseWindow  = 600 * time.Millisecond
	DefaultDayCompletionDelay = 2500 * time.Millisecond
	DefaultDailyResetDelay    = 3000 * time.Millisecond

	TaskCompletedDisplay = 2 * time.Second
	DayCompleteDisplay   = 3 * time.Second
	LevelUpDisplay       = 4 * time.Second
)

// Skill categories
const (
	CategoryPhysical   = "PHYSICAL"
	CategorySocial     = "SOCIAL"
	CategoryDiscipline = "DISCIPLINE"
	CategoryMental     = "MENTAL"
	CategoryIntellect  = "INTELLECT"
	CategoryAmbition   = "AMBITION"
)

// Category colors
const (
	ColorGreen = "#00FF88"
	ColorAmber = "#FFA502"
	ColorRed   = "#FF4757"
)

// MaxSkillLevel is the ceiling for every skill.
const MaxSkillLevel = 100

// Categories lists the skill categories in chart order.
var Categories = []string{
	CategoryPhysical,
	CategorySocial,
	CategoryDiscipline,
	CategoryMental,
	CategoryIntellect,
	CategoryAmbition,
}

// DifficultyPoints are the XP values offered when creating a task.
var DifficultyPoints = []int{6, 12, 18}
