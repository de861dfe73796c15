package disk

import "strings"

type Mount struct {
	PartitionPath string
	MountPoint    string
}

type MountsSearcher interface {
	SearchMounts() ([]Mount, error)
}

func splitLines(text string) []string {
	return strings.Split(strings.TrimSpace(text), "\n")
}

func splitFields(line string) []string {
	return strings.Fields(line)
}
