package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconCursor  = "\uf054" // chevron-right

	IconConfig  = "\ue615" // config
	IconFolder  = "\uf07b" // folder
	IconLogs    = "\uf0f6" // file-text
	IconPackage = "\uf187" // archive
	IconTrash   = "\uf1f8" // trash
	IconLock    = "\uf023" // lock
	IconUnlock  = "\uf09c" // unlock
	IconFlag    = "\uf024" // flag (named signal)
	IconEye     = "\uf06e" // eye (watch)
	IconUser    = "\uf007" // user

	IconPlus   = "+"
	IconMinus  = "-"
	IconChange = "~"
)
