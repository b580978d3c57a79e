package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck    = "\uf00c" // check
	IconX        = "\uf00d" // x
	IconWarning  = "\uf071" // warning
	IconInfo     = "\uf05a" // info
	IconWrench   = "\uf0ad" // wrench
	IconConfig   = "\ue615" // config
	IconCursor   = "\uf054" // chevron-right
	IconKeyboard = "\uf11c" // keyboard
	IconRecord   = "\uf111" // circle
	IconStop     = "\uf04d" // stop
	IconPhone    = "\uf10b" // mobile
	IconBolt     = "\uf0e7" // bolt

	IconVersion   = "\uf412" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGo        = "\ue627" // go
	IconGithub    = "\uf09b" // github

	IconCheckboxEmpty   = "\uf096" // unchecked
	IconCheckboxChecked = "\uf046" // checked
)
