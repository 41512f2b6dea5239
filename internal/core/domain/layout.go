package domain

const (
	// ValuesFileStem is the stem of the conventional definitions file name.
	ValuesFileStem = "values"

	// ValuesFileExt is the extension of the conventional definitions file name.
	ValuesFileExt = ".yaml"

	// ValuesFileName is the conventional definitions file name.
	ValuesFileName = ValuesFileStem + ValuesFileExt

	// SettingsFileName is the name of the settings file looked up from the working directory.
	SettingsFileName = ".helmvals.yaml"

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750
)
