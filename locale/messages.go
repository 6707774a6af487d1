package locale

import "github.com/nicksnyder/go-i18n/v2/i18n"

// Pane headers
var (
	MsgPaneLastPlayed = &i18n.Message{ID: "pane_last_played", Other: "Recently Played"}
	MsgPaneByName     = &i18n.Message{ID: "pane_by_name", Other: "All Games"}
	MsgPaneByPlaytime = &i18n.Message{ID: "pane_by_playtime", Other: "Most Played"}
)

// Splash and library labels
var (
	MsgTitle       = &i18n.Message{ID: "app_title", Other: "Lutris"}
	MsgLoading     = &i18n.Message{ID: "splash_loading", Other: "Loading library"}
	MsgLoadFailed  = &i18n.Message{ID: "splash_load_failed", Other: "Could not read the game list. Press A to try again."}
	MsgNoGames     = &i18n.Message{ID: "library_empty", Other: "No installed games"}
	MsgPlaytime    = &i18n.Message{ID: "label_playtime", Other: "Played {{.Time}}"}
	MsgLastPlayed  = &i18n.Message{ID: "label_last_played", Other: "Last played {{.Date}}"}
	MsgNeverPlayed = &i18n.Message{ID: "label_never_played", Other: "Never played"}
	MsgToday       = &i18n.Message{ID: "label_today", Other: "today"}
	MsgYesterday   = &i18n.Message{ID: "label_yesterday", Other: "yesterday"}
	MsgHoldToExit  = &i18n.Message{ID: "label_hold_to_exit", Other: "Keep holding to exit"}
	MsgLaunching   = &i18n.Message{ID: "toast_launching", Other: "Launching {{.Name}}"}
)

// Exit menu
var (
	MsgMenuTitle    = &i18n.Message{ID: "menu_title", Other: "Leave Lutris?"}
	MsgMenuDesktop  = &i18n.Message{ID: "menu_desktop", Other: "Return to Desktop"}
	MsgMenuShutdown = &i18n.Message{ID: "menu_shutdown", Other: "Shut Down"}
	MsgMenuReboot   = &i18n.Message{ID: "menu_reboot", Other: "Restart"}
	MsgMenuCancel   = &i18n.Message{ID: "menu_cancel", Other: "Cancel"}
)
