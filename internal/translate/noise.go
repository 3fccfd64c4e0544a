package translate

import "strings"

// banner lines some tools print to stdout alongside the actual result;
// they are tool noise, not subtitle content
var noiseMarkers = []string{
	"Loaded cached credentials.",
}

// FilterNoise removes known non-content banner lines from translator
// output before it reaches the validation gate.
func FilterNoise(content string) string {
	lines := strings.Split(content, "\n")
	kept := lines[:0]

	for _, line := range lines {
		if isNoise(line) {
			continue
		}
		kept = append(kept, line)
	}

	return strings.Join(kept, "\n")
}

func isNoise(line string) bool {
	for _, marker := range noiseMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}
