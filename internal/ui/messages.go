package ui

// clearFlashMsg clears the feedback flash it was scheduled for
type clearFlashMsg struct {
	seq int
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
