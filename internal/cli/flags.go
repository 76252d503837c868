package cli

import "clay/internal/config"

// Flags holds command-line flags
type Flags struct {
	ClayPath  string
	ReportTo  string
	Exclude   []string
	Quiet     bool
	Progress  bool
	Format    string
	ShowTests bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ClayPath:  f.ClayPath,
		ReportTo:  f.ReportTo,
		Exclude:   f.Exclude,
		Quiet:     f.Quiet,
		Progress:  f.Progress,
		Format:    f.Format,
		ShowTests: f.ShowTests,
	}
}
