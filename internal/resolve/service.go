package resolve

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/coursedeck/coursedeck/internal/api"
	"github.com/coursedeck/coursedeck/internal/model"
)

// Revert delays for transient control states. Vars so tests can shorten them.
var (
	successRevertDelay = 2 * time.Second
	failureRevertDelay = 3 * time.Second
)

// Control is one resolvable UI control: the download button of a lecture
// video, or of a single attachment. Quality fields are only used for lecture
// videos.
type Control struct {
	ID        string
	CourseID  int64
	LectureID int64
	AssetID   int64  // 0 for the lecture video itself
	Label     string // original label, restored after transient states

	State     model.ResolveState
	LastError string

	QualityState model.QualityState
	Qualities    []string

	qualityLoaded bool // exactly one discovery call per control lifetime
}

// IsAttachment reports whether the control resolves a supplementary asset.
func (c *Control) IsAttachment() bool {
	return c.AssetID != 0
}

// Service drives the resolution workflow for all registered controls.
type Service struct {
	api    *api.Client
	opener func(rawURL string) error

	mu       sync.RWMutex
	controls map[string]*Control
	onUpdate func(*Control) // callback for UI updates
}

// NewService creates a resolution service. The opener is invoked with every
// successfully resolved URL, typically opening it in the system browser.
func NewService(client *api.Client, opener func(rawURL string) error) *Service {
	return &Service{
		api:      client,
		opener:   opener,
		controls: make(map[string]*Control),
	}
}

// SetUpdateCallback sets the callback invoked on every control state change.
func (s *Service) SetUpdateCallback(callback func(*Control)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// RegisterLecture registers a control for a lecture video download button.
func (s *Service) RegisterLecture(courseID, lectureID int64, label string) *Control {
	return s.register(&Control{
		CourseID:  courseID,
		LectureID: lectureID,
		Label:     label,
	})
}

// RegisterAttachment registers a control for an attachment download button.
func (s *Service) RegisterAttachment(courseID, lectureID, assetID int64, label string) *Control {
	return s.register(&Control{
		CourseID:  courseID,
		LectureID: lectureID,
		AssetID:   assetID,
		Label:     label,
	})
}

func (s *Service) register(control *Control) *Control {
	control.ID = uuid.NewString()
	control.State = model.ResolveStateIdle
	control.QualityState = model.QualityStateNotLoaded

	s.mu.Lock()
	s.controls[control.ID] = control
	s.mu.Unlock()

	return control
}

// Control returns a registered control by ID.
func (s *Service) Control(id string) (*Control, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	control, exists := s.controls[id]
	return control, exists
}

// Reset drops all registered controls, e.g. when navigating to a new course.
func (s *Service) Reset() {
	s.mu.Lock()
	s.controls = make(map[string]*Control)
	s.mu.Unlock()
}

// LoadQualities triggers lazy quality discovery for a lecture control.
// Re-entrant triggers while loading or after the first load are no-ops.
func (s *Service) LoadQualities(id string) {
	s.mu.Lock()
	control, exists := s.controls[id]
	if !exists || control.qualityLoaded || control.QualityState == model.QualityStateLoading {
		s.mu.Unlock()
		return
	}
	control.QualityState = model.QualityStateLoading
	s.mu.Unlock()

	s.notifyUpdate(control)
	go s.loadQualities(control)
}

func (s *Service) loadQualities(control *Control) {
	info, err := s.api.LectureQualities(control.CourseID, control.LectureID)

	s.mu.Lock()
	control.qualityLoaded = true
	switch {
	case err != nil:
		// Discovery is best-effort: restore the prompt, no user-visible error.
		log.Printf("quality discovery failed for lecture %d: %v", control.LectureID, err)
		control.QualityState = model.QualityStateNotLoaded
	case info.IsDRM:
		control.QualityState = model.QualityStateLockedForDRM
		control.Qualities = nil
	case len(info.Qualities) > 0:
		control.QualityState = model.QualityStateLoaded
		control.Qualities = append([]string(nil), info.Qualities...)
	default:
		control.QualityState = model.QualityStateLoadedEmpty
	}
	s.mu.Unlock()

	s.notifyUpdate(control)
}

// Resolve triggers download resolution for a control. Quality is only
// meaningful for lecture videos; empty means the backend default. Clicks on
// busy, transient or locked controls are ignored.
func (s *Service) Resolve(id string, quality string) {
	s.mu.Lock()
	control, exists := s.controls[id]
	if !exists || control.State != model.ResolveStateIdle {
		s.mu.Unlock()
		return
	}
	control.State = model.ResolveStateResolving
	control.LastError = ""
	s.mu.Unlock()

	s.notifyUpdate(control)
	go s.resolve(control, quality)
}

func (s *Service) resolve(control *Control, quality string) {
	var res *api.Resolution
	var err error
	if control.IsAttachment() {
		res, err = s.api.ResolveAttachment(control.CourseID, control.LectureID, control.AssetID)
	} else {
		res, err = s.api.ResolveLecture(control.CourseID, control.LectureID, quality)
	}

	switch {
	case err != nil:
		s.fail(control, err.Error())

	case res.Status == api.ResolutionDRMLocked:
		// Terminal: the control becomes a static locked indicator.
		s.mu.Lock()
		control.State = model.ResolveStateLocked
		s.mu.Unlock()
		s.notifyUpdate(control)

	case res.Status == api.ResolutionSuccess && res.URL != "":
		s.mu.Lock()
		control.State = model.ResolveStateSucceeded
		s.mu.Unlock()
		s.notifyUpdate(control)

		if openErr := s.opener(res.URL); openErr != nil {
			log.Printf("failed to open resolved URL: %v", openErr)
		}
		s.revertAfter(control, successRevertDelay)

	default:
		s.fail(control, "no download link available")
	}
}

func (s *Service) fail(control *Control, message string) {
	s.mu.Lock()
	control.State = model.ResolveStateFailed
	control.LastError = message
	s.mu.Unlock()

	s.notifyUpdate(control)
	s.revertAfter(control, failureRevertDelay)
}

// revertAfter restores a transient control to Idle once its display window
// elapsed. Locked controls are never reverted.
func (s *Service) revertAfter(control *Control, delay time.Duration) {
	time.AfterFunc(delay, func() {
		s.mu.Lock()
		if !control.State.IsTransient() {
			s.mu.Unlock()
			return
		}
		control.State = model.ResolveStateIdle
		s.mu.Unlock()

		s.notifyUpdate(control)
	})
}

func (s *Service) notifyUpdate(control *Control) {
	s.mu.RLock()
	callback := s.onUpdate
	s.mu.RUnlock()

	if callback != nil {
		callback(control)
	}
}
