package mentor

import "strings"

// cleanJSON strips the markdown fences and stray prose models wrap around
// JSON payloads, keeping everything from the first opening bracket to the
// last matching close. Works for both objects and arrays.
func cleanJSON(output string) string {
	output = strings.TrimSpace(output)
	output = strings.TrimPrefix(output, "```json")
	output = strings.TrimPrefix(output, "```")
	output = strings.TrimSuffix(output, "```")
	output = strings.TrimSpace(output)

	start := strings.Index(output, "{")
	end := strings.LastIndex(output, "}")
	if arrStart := strings.Index(output, "["); arrStart != -1 && (start == -1 || arrStart < start) {
		start = arrStart
		end = strings.LastIndex(output, "]")
	}
	if start != -1 && end > start {
		return output[start : end+1]
	}
	return output
}
