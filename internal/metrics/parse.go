package metrics

import (
	"bufio"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// sampleLine matches `name{labels} value`; the label block is optional
var sampleLine = regexp.MustCompile(`^([a-zA-Z_:][a-zA-Z0-9_:]*(?:\{[^}]*\})?)[ \t]+([0-9.+\-eE]+)`)

// Parse reads a Prometheus text exposition into a map keyed by metric name with
// its label block verbatim. Comments, blank lines and unparsable values are skipped.
func Parse(text string) map[string]float64 {
	metrics := make(map[string]float64)

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		m := sampleLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		value, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		metrics[m[1]] = value
	}

	return metrics
}

// FormatUptime renders seconds as Ns, Nm, Hh Mm or Dd Hh
func FormatUptime(seconds float64) string {
	whole := int64(seconds)
	switch {
	case seconds < 60:
		return fmt.Sprintf("%.0fs", math.Round(seconds))
	case seconds < 3600:
		return fmt.Sprintf("%.0fm", math.Round(seconds/60))
	case seconds < 86400:
		hours := math.Floor(seconds / 3600)
		minutes := math.Round(float64(whole%3600) / 60)
		return fmt.Sprintf("%.0fh %.0fm", hours, minutes)
	default:
		days := math.Floor(seconds / 86400)
		hours := math.Round(float64(whole%86400) / 3600)
		return fmt.Sprintf("%.0fd %.0fh", days, hours)
	}
}

// SuccessRate returns (total-failed)/total as a percentage rounded to 2 decimals, or 100 when total is 0
func SuccessRate(total, failed float64) float64 {
	if total == 0 {
		return 100
	}
	return round2((total - failed) / total * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
