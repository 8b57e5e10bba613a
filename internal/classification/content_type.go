package classification

// ContentType is a coarse heuristic label describing the nature of a video.
// The set is closed; preset customization keys off these values.
type ContentType string

const (
	TalkingHead   ContentType = "talking_head"
	Gaming        ContentType = "gaming"
	Tutorial      ContentType = "tutorial"
	Entertainment ContentType = "entertainment"
	Music         ContentType = "music"
	Sports        ContentType = "sports"
	Animation     ContentType = "animation"
	General       ContentType = "general"
)

// ContentTypes lists every label the classifier can produce, in a stable
// order for display.
func ContentTypes() []ContentType {
	return []ContentType{TalkingHead, Gaming, Tutorial, Entertainment, Music, Sports, Animation, General}
}

// Known reports whether c belongs to the closed label set.
func (c ContentType) Known() bool {
	switch c {
	case TalkingHead, Gaming, Tutorial, Entertainment, Music, Sports, Animation, General:
		return true
	}
	return false
}

func (c ContentType) String() string { return string(c) }
