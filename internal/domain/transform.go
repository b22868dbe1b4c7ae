package domain

import "strings"

// ShotFileSuffix marks per-station shot files in the input directory.
const ShotFileSuffix = ".time"

// IsShotFile reports whether a directory entry name is a per-station shot file.
func IsShotFile(name string) bool {
	return strings.HasSuffix(name, ShotFileSuffix)
}

// StationCodeFromFilename returns the part of a shot file name before the first
// dot, e.g. "OBS01.P.time" -> "OBS01".
func StationCodeFromFilename(name string) string {
	code, _, _ := strings.Cut(name, ".")
	return code
}

// NewShotFile describes a shot file found at path with the given base name.
func NewShotFile(path, name string) ShotFile {
	return ShotFile{
		Path:        path,
		Name:        name,
		StationCode: StationCodeFromFilename(name),
	}
}
