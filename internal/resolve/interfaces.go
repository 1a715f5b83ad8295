package resolve

// Resolver defines the interface for the resolution workflow service.
type Resolver interface {
	SetUpdateCallback(func(*Control))
	RegisterLecture(courseID, lectureID int64, label string) *Control
	RegisterAttachment(courseID, lectureID, assetID int64, label string) *Control
	Control(id string) (*Control, bool)
	LoadQualities(id string)
	Resolve(id string, quality string)
}
