package input

// Key represents a keyboard key.
type Key int32

// Only defining keys used by this program
//
// We don't reuse ebiten or tcell constants so that neither library is included
// as a package for builds that don't present with it. Each renderer maps its
// own key codes onto these.
const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyEnter
)

func (key Key) String() string {
	switch key {
	case KeyEscape:
		return "Escape"
	case KeySpace:
		return "Space"
	case KeyEnter:
		return "Enter"
	}
	return "Unknown"
}

// IsExitKey reports whether the key is the designated key to quit the program
func IsExitKey(key Key) bool {
	return key == KeyEscape
}
