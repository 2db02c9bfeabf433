package button

import (
	"github.com/b0bbywan/go-panel-actions/action"
	"github.com/b0bbywan/go-panel-actions/icons"
	"github.com/b0bbywan/go-panel-actions/logger"
)

// DragMIMEType tags action drag tokens on the wire.
const DragMIMEType = "application/x-mate-panel-applet-internal"

// View is the widget surface a button drives. It stands in for the toolkit:
// the button decides what to show, the view shows it.
type View interface {
	SetIconName(name string)
	SetTooltip(text string)
	SetActivatable(ok bool)
	EnableDragSource(mimeType string)
	DisableDragSource()
	SetDragIcon(name string)
}

// Button is one panel action button. It starts unset and binds to a concrete
// kind at most once per kind; there is no way back to unset.
type Button struct {
	id       string
	registry *action.Registry
	view     View

	kind       action.Kind
	dndEnabled bool
}

func New(id string, registry *action.Registry, view View) *Button {
	return &Button{
		id:       id,
		registry: registry,
		view:     view,
	}
}

func (b *Button) ID() string { return b.id }

// Kind returns the bound kind, None while unset.
func (b *Button) Kind() action.Kind { return b.kind }

// Bind assigns the button's action kind. None is explicitly ignored, as is
// re-binding the current kind; any other kind replaces the binding and
// refreshes the display metadata and enablement.
func (b *Button) Bind(kind action.Kind) {
	if kind == action.None {
		return
	}
	if !kind.Valid() {
		logger.Warn("[button] %s: bind to invalid kind %d ignored", b.id, int(kind))
		return
	}
	if kind == b.kind {
		return
	}

	b.kind = kind

	d, err := b.registry.Descriptor(kind)
	if err != nil {
		return
	}

	if d.IconName != "" {
		b.view.SetIconName(d.IconName)
	}
	b.view.SetTooltip(d.Tooltip)

	b.updateSensitivity()
}

// updateSensitivity re-evaluates the enablement predicate. Actions without a
// predicate never toggle activatability.
func (b *Button) updateSensitivity() {
	d, err := b.registry.Descriptor(b.kind)
	if err != nil {
		return
	}
	if d.IsDisabled != nil {
		b.view.SetActivatable(b.registry.IsEnabled(b.kind))
	}
}

// SetDnDEnabled toggles the button as a drag source. Ignored while unset:
// wait until we know what type it is.
func (b *Button) SetDnDEnabled(enabled bool) {
	if b.kind == action.None {
		return
	}
	if b.dndEnabled == enabled {
		return
	}

	if enabled {
		b.view.EnableDragSource(DragMIMEType)
		if d, err := b.registry.Descriptor(b.kind); err == nil && d.IconName != "" {
			b.view.SetDragIcon(d.IconName)
		}
	} else {
		b.view.DisableDragSource()
	}

	b.dndEnabled = enabled
}

// DnDEnabled reports whether the button is currently a drag source.
func (b *Button) DnDEnabled() bool { return b.dndEnabled }

// DragData encodes the token a drag of this button carries, identifying its
// kind and current panel position.
func (b *Button) DragData(sourceIndex int) (string, error) {
	return action.Encode(b.kind, false, sourceIndex)
}

// Click dispatches the bound action.
func (b *Button) Click(ctx action.Context) error {
	if !b.kind.Valid() {
		return &action.InvalidKindError{Kind: b.kind}
	}
	return b.registry.Invoke(ctx, b.kind)
}

// SetupMenu contributes the button's context menu: the help item every
// action carries, then whatever the bound action adds.
func (b *Button) SetupMenu(m action.MenuRegistrar) {
	m.AddCallback("help", icons.IconHelp, "Help", nil)

	d, err := b.registry.Descriptor(b.kind)
	if err != nil {
		return
	}
	if d.SetupMenu != nil {
		d.SetupMenu(m)
	}
}

// InvokeMenuItem dispatches a context menu item through the registry.
func (b *Button) InvokeMenuItem(ctx action.Context, itemID string) error {
	return b.registry.InvokeMenuItem(ctx, b.kind, itemID)
}

// OnKindChanged is the settings collaborator hook for a changed action kind.
func (b *Button) OnKindChanged(kind action.Kind) {
	b.Bind(kind)
}

// OnPolicyChanged is the lockdown collaborator hook. A no-op while unset.
func (b *Button) OnPolicyChanged() {
	if b.kind == action.None {
		return
	}
	b.updateSensitivity()
}
