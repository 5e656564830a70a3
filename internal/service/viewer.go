package service

// ViewerKind tags who is looking at an attempt. Projection is decided by
// exhaustive dispatch on this tag instead of ad hoc boolean chains.
type ViewerKind int

const (
	ViewerAnonymous ViewerKind = iota
	ViewerOwner
	ViewerAdmin
)

type Viewer struct {
	kind   ViewerKind
	userID uint
}

func AnonymousViewer() Viewer { return Viewer{kind: ViewerAnonymous} }

func OwnerViewer(userID uint) Viewer { return Viewer{kind: ViewerOwner, userID: userID} }

func AdminViewer() Viewer { return Viewer{kind: ViewerAdmin} }

func (v Viewer) Kind() ViewerKind { return v.kind }

func (v Viewer) IsAdmin() bool { return v.kind == ViewerAdmin }

// UserID returns the authenticated user id when the viewer is an owner.
func (v Viewer) UserID() (uint, bool) {
	if v.kind == ViewerOwner {
		return v.userID, true
	}
	return 0, false
}
