package deps

type Outcome uint8

const (
	Skipped Outcome = iota + 1
	Installed
	WarnedNoManifest
)

func (o Outcome) String() string {
	switch o {
	case Skipped:
		return "skipped"
	case Installed:
		return "installed"
	case WarnedNoManifest:
		return "no manifest"
	}
	return "unknown"
}
