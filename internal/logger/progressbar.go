package logger

import (
	"fmt"
	"sync"
)

// ProgressBar renders an ASCII progress bar with optional color.
// It is safe for concurrent use; a walk goroutine may update it while the
// consumer renders.
type ProgressBar struct {
	current     int
	total       int
	width       int
	enableColor bool
	mu          sync.RWMutex
}

// NewProgressBar creates a progress bar of the given width in characters.
func NewProgressBar(total, width int, enableColor bool) *ProgressBar {
	if width < 1 {
		width = 10
	}
	return &ProgressBar{
		total:       total,
		width:       width,
		enableColor: enableColor,
	}
}

// Update sets the current progress value.
func (pb *ProgressBar) Update(current int) {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.current = current
}

// Percentage returns the progress percentage clamped to 0-100.
func (pb *ProgressBar) Percentage() int {
	pb.mu.RLock()
	defer pb.mu.RUnlock()
	return pb.percentageLocked()
}

func (pb *ProgressBar) percentageLocked() int {
	if pb.total == 0 {
		return 0
	}
	perc := (pb.current * 100) / pb.total
	if perc > 100 {
		perc = 100
	}
	if perc < 0 {
		perc = 0
	}
	return perc
}

// Render generates the bar string: "[=====     ] 42/100 (42%)".
// In-progress bars render cyan, completed bars green when color is enabled.
func (pb *ProgressBar) Render() string {
	pb.mu.RLock()
	defer pb.mu.RUnlock()

	perc := pb.percentageLocked()
	filled := (perc * pb.width) / 100

	bar := make([]byte, 0, pb.width+2)
	bar = append(bar, '[')
	for i := 0; i < pb.width; i++ {
		if i < filled {
			bar = append(bar, '=')
		} else {
			bar = append(bar, ' ')
		}
	}
	bar = append(bar, ']')

	result := fmt.Sprintf("%s %d/%d (%d%%)", bar, pb.current, pb.total, perc)

	if pb.enableColor && perc < 100 {
		result = fmt.Sprintf("\033[36m%s\033[0m", result)
	} else if pb.enableColor && perc == 100 {
		result = fmt.Sprintf("\033[32m%s\033[0m", result)
	}

	return result
}
