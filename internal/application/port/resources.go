package port

// StringKey identifies a user-facing string.
type StringKey string

const (
	StringClickTypeShortPress  StringKey = "clicktype_short_press"
	StringClickTypeLongPress   StringKey = "clicktype_long_press"
	StringClickTypeDoublePress StringKey = "clicktype_double_press"
	StringMiddleDot            StringKey = "middot"
	StringThisDevice           StringKey = "this_device"
	StringAnyDevice            StringKey = "any_device"
	StringDontRemap            StringKey = "flag_dont_override_default_action"

	StringTriggerModeParallel StringKey = "radio_button_parallel"
	StringTriggerModeSequence StringKey = "radio_button_sequence"

	StringTriggerErrorDndAccessDenied       StringKey = "trigger_error_dnd_access_denied"
	StringTriggerErrorScreenOffRootDenied   StringKey = "trigger_error_screen_off_root_permission_denied"
	StringTriggerErrorCantDetectInPhoneCall StringKey = "trigger_error_cant_detect_in_phone_call"
	StringTriggerErrorDeviceNotConnected    StringKey = "trigger_error_device_not_connected"

	StringAccessibilityServiceCrashed  StringKey = "dialog_message_restart_accessibility_service"
	StringAccessibilityServiceDisabled StringKey = "dialog_message_enable_accessibility_service_to_record_trigger"
	StringDndAccessExplanation         StringKey = "dialog_message_dnd_access_explanation"
)

// ResourceProvider resolves user-facing strings.
type ResourceProvider interface {
	GetString(key StringKey) string
}
