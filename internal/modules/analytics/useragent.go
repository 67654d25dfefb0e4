package analytics

import "strings"

// classifyUserAgent does coarse browser/device/OS detection, enough for
// the admin traffic panel. Order matters: Edge ships "Chrome" in its UA,
// Chrome ships "Safari".
func classifyUserAgent(ua string) (browser, device, os string) {
	browser, device, os = "Other", "Desktop", "Other"

	switch {
	case strings.Contains(ua, "Edg"):
		browser = "Edge"
	case strings.Contains(ua, "Chrome"):
		browser = "Chrome"
	case strings.Contains(ua, "Firefox"):
		browser = "Firefox"
	case strings.Contains(ua, "Safari"):
		browser = "Safari"
	}

	if strings.Contains(ua, "Mobile") || strings.Contains(ua, "Android") ||
		strings.Contains(ua, "iPhone") || strings.Contains(ua, "iPad") {
		device = "Mobile"
	}

	switch {
	case strings.Contains(ua, "Windows"):
		os = "Windows"
	case strings.Contains(ua, "Android"):
		os = "Android"
	case strings.Contains(ua, "iPhone") || strings.Contains(ua, "iPad") || strings.Contains(ua, "iOS"):
		os = "iOS"
	case strings.Contains(ua, "Mac"):
		os = "macOS"
	case strings.Contains(ua, "Linux"):
		os = "Linux"
	}
	return browser, device, os
}
