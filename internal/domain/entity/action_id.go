package entity

// ActionID is the stable tag identifying an action kind.
// It is the lookup key for permission, SDK and execution metadata and is
// stored with key maps, so values must never be renamed.
type ActionID string

const (
	ActionIDApp         ActionID = "APP"
	ActionIDAppShortcut ActionID = "APP_SHORTCUT"
	ActionIDKeyEvent    ActionID = "KEY_EVENT"
	ActionIDSound       ActionID = "SOUND"

	ActionIDVolumeUp         ActionID = "VOLUME_UP"
	ActionIDVolumeDown       ActionID = "VOLUME_DOWN"
	ActionIDVolumeMute       ActionID = "VOLUME_MUTE"
	ActionIDVolumeUnmute     ActionID = "VOLUME_UNMUTE"
	ActionIDVolumeToggleMute ActionID = "VOLUME_TOGGLE_MUTE"
	ActionIDVolumeShowDialog ActionID = "VOLUME_SHOW_DIALOG"

	ActionIDChangeRingerMode ActionID = "CHANGE_RINGER_MODE"
	ActionIDCycleRingerMode  ActionID = "CYCLE_RINGER_MODE"
	ActionIDCycleVibrateRing ActionID = "CYCLE_VIBRATE_RING"

	ActionIDToggleFlashlight  ActionID = "TOGGLE_FLASHLIGHT"
	ActionIDEnableFlashlight  ActionID = "ENABLE_FLASHLIGHT"
	ActionIDDisableFlashlight ActionID = "DISABLE_FLASHLIGHT"

	ActionIDSwitchKeyboard ActionID = "SWITCH_KEYBOARD"

	ActionIDToggleDndMode  ActionID = "TOGGLE_DND_MODE"
	ActionIDEnableDndMode  ActionID = "ENABLE_DND_MODE"
	ActionIDDisableDndMode ActionID = "DISABLE_DND_MODE"

	ActionIDEnableAutoRotate  ActionID = "ENABLE_AUTO_ROTATE"
	ActionIDDisableAutoRotate ActionID = "DISABLE_AUTO_ROTATE"
	ActionIDToggleAutoRotate  ActionID = "TOGGLE_AUTO_ROTATE"
	ActionIDPortraitMode      ActionID = "PORTRAIT_MODE"
	ActionIDLandscapeMode     ActionID = "LANDSCAPE_MODE"
	ActionIDSwitchOrientation ActionID = "SWITCH_ORIENTATION"
	ActionIDCycleRotations    ActionID = "CYCLE_ROTATIONS"

	ActionIDPauseMediaPackage     ActionID = "PAUSE_MEDIA_PACKAGE"
	ActionIDPlayMediaPackage      ActionID = "PLAY_MEDIA_PACKAGE"
	ActionIDPlayPauseMediaPackage ActionID = "PLAY_PAUSE_MEDIA_PACKAGE"
	ActionIDNextTrackPackage      ActionID = "NEXT_TRACK_PACKAGE"
	ActionIDPreviousTrackPackage  ActionID = "PREVIOUS_TRACK_PACKAGE"
	ActionIDFastForwardPackage    ActionID = "FAST_FORWARD_PACKAGE"
	ActionIDRewindPackage         ActionID = "REWIND_PACKAGE"

	ActionIDPauseMedia     ActionID = "PAUSE_MEDIA"
	ActionIDPlayMedia      ActionID = "PLAY_MEDIA"
	ActionIDPlayPauseMedia ActionID = "PLAY_PAUSE_MEDIA"
	ActionIDNextTrack      ActionID = "NEXT_TRACK"
	ActionIDPreviousTrack  ActionID = "PREVIOUS_TRACK"
	ActionIDFastForward    ActionID = "FAST_FORWARD"
	ActionIDRewind         ActionID = "REWIND"

	ActionIDIntent    ActionID = "INTENT"
	ActionIDTapScreen ActionID = "TAP_SCREEN"
	ActionIDPhoneCall ActionID = "PHONE_CALL"
	ActionIDURL       ActionID = "URL"
	ActionIDText      ActionID = "TEXT"

	ActionIDEnableWifi  ActionID = "ENABLE_WIFI"
	ActionIDDisableWifi ActionID = "DISABLE_WIFI"
	ActionIDToggleWifi  ActionID = "TOGGLE_WIFI"

	ActionIDEnableBluetooth  ActionID = "ENABLE_BLUETOOTH"
	ActionIDDisableBluetooth ActionID = "DISABLE_BLUETOOTH"
	ActionIDToggleBluetooth  ActionID = "TOGGLE_BLUETOOTH"

	ActionIDEnableNfc  ActionID = "ENABLE_NFC"
	ActionIDDisableNfc ActionID = "DISABLE_NFC"
	ActionIDToggleNfc  ActionID = "TOGGLE_NFC"

	ActionIDEnableAirplaneMode  ActionID = "ENABLE_AIRPLANE_MODE"
	ActionIDDisableAirplaneMode ActionID = "DISABLE_AIRPLANE_MODE"
	ActionIDToggleAirplaneMode  ActionID = "TOGGLE_AIRPLANE_MODE"

	ActionIDEnableMobileData  ActionID = "ENABLE_MOBILE_DATA"
	ActionIDDisableMobileData ActionID = "DISABLE_MOBILE_DATA"
	ActionIDToggleMobileData  ActionID = "TOGGLE_MOBILE_DATA"

	ActionIDEnableAutoBrightness  ActionID = "ENABLE_AUTO_BRIGHTNESS"
	ActionIDDisableAutoBrightness ActionID = "DISABLE_AUTO_BRIGHTNESS"
	ActionIDToggleAutoBrightness  ActionID = "TOGGLE_AUTO_BRIGHTNESS"
	ActionIDIncreaseBrightness    ActionID = "INCREASE_BRIGHTNESS"
	ActionIDDecreaseBrightness    ActionID = "DECREASE_BRIGHTNESS"

	ActionIDExpandNotificationDrawer ActionID = "EXPAND_NOTIFICATION_DRAWER"
	ActionIDToggleNotificationDrawer ActionID = "TOGGLE_NOTIFICATION_DRAWER"
	ActionIDExpandQuickSettings      ActionID = "EXPAND_QUICK_SETTINGS"
	ActionIDToggleQuickSettings      ActionID = "TOGGLE_QUICK_SETTINGS"
	ActionIDCollapseStatusBar        ActionID = "COLLAPSE_STATUS_BAR"

	ActionIDGoBack                        ActionID = "GO_BACK"
	ActionIDGoHome                        ActionID = "GO_HOME"
	ActionIDOpenRecents                   ActionID = "OPEN_RECENTS"
	ActionIDGoLastApp                     ActionID = "GO_LAST_APP"
	ActionIDOpenMenu                      ActionID = "OPEN_MENU"
	ActionIDToggleSplitScreen             ActionID = "TOGGLE_SPLIT_SCREEN"
	ActionIDScreenshot                    ActionID = "SCREENSHOT"
	ActionIDMoveCursorToEnd               ActionID = "MOVE_CURSOR_TO_END"
	ActionIDToggleKeyboard                ActionID = "TOGGLE_KEYBOARD"
	ActionIDShowKeyboard                  ActionID = "SHOW_KEYBOARD"
	ActionIDHideKeyboard                  ActionID = "HIDE_KEYBOARD"
	ActionIDShowKeyboardPicker            ActionID = "SHOW_KEYBOARD_PICKER"
	ActionIDTextCopy                      ActionID = "TEXT_COPY"
	ActionIDTextPaste                     ActionID = "TEXT_PASTE"
	ActionIDTextCut                       ActionID = "TEXT_CUT"
	ActionIDSelectWordAtCursor            ActionID = "SELECT_WORD_AT_CURSOR"
	ActionIDOpenVoiceAssistant            ActionID = "OPEN_VOICE_ASSISTANT"
	ActionIDOpenDeviceAssistant           ActionID = "OPEN_DEVICE_ASSISTANT"
	ActionIDOpenCamera                    ActionID = "OPEN_CAMERA"
	ActionIDLockDevice                    ActionID = "LOCK_DEVICE"
	ActionIDPowerOnOffDevice              ActionID = "POWER_ON_OFF_DEVICE"
	ActionIDSecureLockDevice              ActionID = "SECURE_LOCK_DEVICE"
	ActionIDConsumeKeyEvent               ActionID = "CONSUME_KEY_EVENT"
	ActionIDOpenSettings                  ActionID = "OPEN_SETTINGS"
	ActionIDShowPowerMenu                 ActionID = "SHOW_POWER_MENU"
	ActionIDDismissMostRecentNotification ActionID = "DISMISS_MOST_RECENT_NOTIFICATION"
	ActionIDDismissAllNotifications       ActionID = "DISMISS_ALL_NOTIFICATIONS"
	ActionIDAnswerPhoneCall               ActionID = "ANSWER_PHONE_CALL"
	ActionIDEndPhoneCall                  ActionID = "END_PHONE_CALL"
)

// systemActionIDs are the kinds without a payload.
var systemActionIDs = map[ActionID]struct{}{
	ActionIDVolumeShowDialog:              {},
	ActionIDCycleRingerMode:               {},
	ActionIDCycleVibrateRing:              {},
	ActionIDDisableDndMode:                {},
	ActionIDEnableAutoRotate:              {},
	ActionIDDisableAutoRotate:             {},
	ActionIDToggleAutoRotate:              {},
	ActionIDPortraitMode:                  {},
	ActionIDLandscapeMode:                 {},
	ActionIDSwitchOrientation:             {},
	ActionIDPauseMedia:                    {},
	ActionIDPlayMedia:                     {},
	ActionIDPlayPauseMedia:                {},
	ActionIDNextTrack:                     {},
	ActionIDPreviousTrack:                 {},
	ActionIDFastForward:                   {},
	ActionIDRewind:                        {},
	ActionIDEnableWifi:                    {},
	ActionIDDisableWifi:                   {},
	ActionIDToggleWifi:                    {},
	ActionIDEnableBluetooth:               {},
	ActionIDDisableBluetooth:              {},
	ActionIDToggleBluetooth:               {},
	ActionIDEnableNfc:                     {},
	ActionIDDisableNfc:                    {},
	ActionIDToggleNfc:                     {},
	ActionIDEnableAirplaneMode:            {},
	ActionIDDisableAirplaneMode:           {},
	ActionIDToggleAirplaneMode:            {},
	ActionIDEnableMobileData:              {},
	ActionIDDisableMobileData:             {},
	ActionIDToggleMobileData:              {},
	ActionIDEnableAutoBrightness:          {},
	ActionIDDisableAutoBrightness:         {},
	ActionIDToggleAutoBrightness:          {},
	ActionIDIncreaseBrightness:            {},
	ActionIDDecreaseBrightness:            {},
	ActionIDExpandNotificationDrawer:      {},
	ActionIDToggleNotificationDrawer:      {},
	ActionIDExpandQuickSettings:           {},
	ActionIDToggleQuickSettings:           {},
	ActionIDCollapseStatusBar:             {},
	ActionIDGoBack:                        {},
	ActionIDGoHome:                        {},
	ActionIDOpenRecents:                   {},
	ActionIDGoLastApp:                     {},
	ActionIDOpenMenu:                      {},
	ActionIDToggleSplitScreen:             {},
	ActionIDScreenshot:                    {},
	ActionIDMoveCursorToEnd:               {},
	ActionIDToggleKeyboard:                {},
	ActionIDShowKeyboard:                  {},
	ActionIDHideKeyboard:                  {},
	ActionIDShowKeyboardPicker:            {},
	ActionIDTextCopy:                      {},
	ActionIDTextPaste:                     {},
	ActionIDTextCut:                       {},
	ActionIDSelectWordAtCursor:            {},
	ActionIDOpenVoiceAssistant:            {},
	ActionIDOpenDeviceAssistant:           {},
	ActionIDOpenCamera:                    {},
	ActionIDLockDevice:                    {},
	ActionIDPowerOnOffDevice:              {},
	ActionIDSecureLockDevice:              {},
	ActionIDConsumeKeyEvent:               {},
	ActionIDOpenSettings:                  {},
	ActionIDShowPowerMenu:                 {},
	ActionIDDismissMostRecentNotification: {},
	ActionIDDismissAllNotifications:       {},
	ActionIDAnswerPhoneCall:               {},
	ActionIDEndPhoneCall:                  {},
}

// IsSystemAction reports whether the action kind carries no payload.
func IsSystemAction(id ActionID) bool {
	_, ok := systemActionIDs[id]
	return ok
}
