package constants

// Mode pencatatan ibadah
const (
	TrackingChecklist = "checklist"
	TrackingCount     = "count"
)

// Frekuensi jadwal
const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
)

// Tipe jadwal
const (
	ScheduleAlways        = "always"
	ScheduleDateRange     = "date_range"
	ScheduleSpecificDates = "specific_dates"
)

// Status tiket support
const (
	SupportOpen       = "open"
	SupportInProgress = "in_progress"
	SupportResolved   = "resolved"
	SupportClosed     = "closed"
)

// Jenis konten Ramadhan
const (
	RamadhanTips     = "tips"
	RamadhanDua      = "dua"
	RamadhanSchedule = "schedule"
	RamadhanArticle  = "article"
)

// Key admin_settings yang dipakai aplikasi
const (
	SettingRamadhanMode    = "ramadhan_mode"
	SettingAppName         = "app_name"
	SettingMaintenanceMode = "maintenance_mode"
	SettingAnnouncement    = "announcement"
)

// PublicSettingKeys boleh dibaca tanpa login.
var PublicSettingKeys = []string{
	SettingRamadhanMode,
	SettingAppName,
	SettingMaintenanceMode,
	SettingAnnouncement,
}
