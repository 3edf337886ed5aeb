package winbox

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/1broseidon/winbox/internal/geom"
	"github.com/1broseidon/winbox/internal/platform"
	mock_platform "github.com/1broseidon/winbox/internal/platform/mocks"
)

// area is an in-memory region that records every write, standing in for a
// window whose manager accepts any geometry.
type area struct {
	box     geom.Box
	queries int
	writes  []geom.Box
}

func (a *area) query() geom.Box { a.queries++; return a.box }

func (a *area) set(b geom.Box) {
	a.writes = append(a.writes, b)
	a.box = b
}

func newArea(t *testing.T, b geom.Box) (*area, *Controller) {
	t.Helper()
	a := &area{box: b}
	c, err := New(a.query, a.set)
	require.NoError(t, err)
	return a, c
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func bx(left, top, width, height int) geom.Box {
	return geom.Box{Left: left, Top: top, Width: width, Height: height}
}

type testWindow string

func (w testWindow) String() string { return string(w) }

func TestNewRequiresCallbacksWithoutHandle(t *testing.T) {
	q := func() geom.Box { return geom.Box{} }
	s := func(geom.Box) {}

	_, err := New(nil, s)
	assert.ErrorIs(t, err, ErrMissingCallbacks)

	_, err = New(q, nil)
	assert.ErrorIs(t, err, ErrMissingCallbacks)

	_, err = New(nil, nil)
	assert.ErrorIs(t, err, ErrMissingCallbacks)

	c, err := New(q, s)
	require.NoError(t, err)
	assert.Nil(t, c.Window())
}

func TestCenterXScenario(t *testing.T) {
	a, c := newArea(t, geom.Box{Left: 0, Top: 0, Width: 100, Height: 50})

	c.SetCenterX(200)

	require.Len(t, a.writes, 1)
	assert.Equal(t, geom.Box{Left: 150, Top: 0, Width: 100, Height: 50}, a.writes[0])
	assert.Equal(t, geom.Box{Left: 150, Top: 0, Width: 100, Height: 50}, c.Box())
}

func TestGetters(t *testing.T) {
	_, c := newArea(t, geom.Box{Left: 10, Top: 20, Width: 300, Height: 200})

	assert.Equal(t, 10, c.Left())
	assert.Equal(t, 310, c.Right())
	assert.Equal(t, 20, c.Top())
	assert.Equal(t, 220, c.Bottom())
	assert.Equal(t, 300, c.Width())
	assert.Equal(t, 200, c.Height())
	assert.Equal(t, geom.Point{X: 10, Y: 20}, c.Position())
	assert.Equal(t, geom.Size{Width: 300, Height: 200}, c.Size())
	assert.Equal(t, geom.Box{Left: 10, Top: 20, Width: 300, Height: 200}, c.Box())
	assert.Equal(t, geom.Rect{Left: 10, Top: 20, Right: 310, Bottom: 220}, c.Rect())
	assert.Equal(t, geom.Point{X: 10, Y: 20}, c.TopLeft())
	assert.Equal(t, geom.Point{X: 10, Y: 220}, c.BottomLeft())
	assert.Equal(t, geom.Point{X: 310, Y: 20}, c.TopRight())
	assert.Equal(t, geom.Point{X: 310, Y: 220}, c.BottomRight())
	assert.Equal(t, geom.Point{X: 160, Y: 20}, c.MidTop())
	assert.Equal(t, geom.Point{X: 160, Y: 220}, c.MidBottom())
	assert.Equal(t, geom.Point{X: 10, Y: 120}, c.MidLeft())
	assert.Equal(t, geom.Point{X: 310, Y: 120}, c.MidRight())
	assert.Equal(t, geom.Point{X: 160, Y: 120}, c.Center())
	assert.Equal(t, 160, c.CenterX())
	assert.Equal(t, 120, c.CenterY())
}

func TestSettersComputeCanonicalBox(t *testing.T) {
	start := geom.Box{Left: 100, Top: 100, Width: 400, Height: 300}
	cases := []struct {
		name  string
		apply func(*Controller)
		want  geom.Box
	}{
		{"left", func(c *Controller) { c.SetLeft(250) }, bx(250, 100, 400, 300)},
		{"right", func(c *Controller) { c.SetRight(950) }, bx(550, 100, 400, 300)},
		{"top", func(c *Controller) { c.SetTop(150) }, bx(100, 150, 400, 300)},
		{"bottom", func(c *Controller) { c.SetBottom(775) }, bx(100, 475, 400, 300)},
		{"width", func(c *Controller) { c.SetWidth(700) }, bx(100, 100, 700, 300)},
		{"height", func(c *Controller) { c.SetHeight(401) }, bx(100, 100, 400, 401)},
		{"position", func(c *Controller) { c.SetPosition(geom.Point{X: -5, Y: 7}) }, bx(-5, 7, 400, 300)},
		{"size", func(c *Controller) { c.SetSize(geom.Size{Width: 551, Height: 401}) }, bx(100, 100, 551, 401)},
		{"topleft", func(c *Controller) { c.SetTopLeft(geom.Point{X: 155, Y: 350}) }, bx(155, 350, 400, 300)},
		{"bottomleft", func(c *Controller) { c.SetBottomLeft(geom.Point{X: 300, Y: 975}) }, bx(300, 675, 400, 300)},
		{"topright", func(c *Controller) { c.SetTopRight(geom.Point{X: 1000, Y: 300}) }, bx(600, 300, 400, 300)},
		{"bottomright", func(c *Controller) { c.SetBottomRight(geom.Point{X: 1000, Y: 900}) }, bx(600, 600, 400, 300)},
		{"midtop", func(c *Controller) { c.SetMidTop(geom.Point{X: 500, Y: 350}) }, bx(300, 350, 400, 300)},
		{"midbottom", func(c *Controller) { c.SetMidBottom(geom.Point{X: 500, Y: 800}) }, bx(300, 500, 400, 300)},
		{"midleft", func(c *Controller) { c.SetMidLeft(geom.Point{X: 300, Y: 400}) }, bx(300, 250, 400, 300)},
		{"midright", func(c *Controller) { c.SetMidRight(geom.Point{X: 1050, Y: 600}) }, bx(650, 450, 400, 300)},
		{"center", func(c *Controller) { c.SetCenter(geom.Point{X: 500, Y: 350}) }, bx(300, 200, 400, 300)},
		{"centerx", func(c *Controller) { c.SetCenterX(1000) }, bx(800, 100, 400, 300)},
		{"centery", func(c *Controller) { c.SetCenterY(600) }, bx(100, 450, 400, 300)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, c := newArea(t, start)
			tc.apply(c)
			require.Len(t, a.writes, 1)
			assert.Equal(t, tc.want, a.writes[0])
			assert.Equal(t, 1, a.queries, "setters read exactly once before writing")
		})
	}
}

func TestSetBoxAndRectSkipQuery(t *testing.T) {
	a, c := newArea(t, geom.Box{Left: 1, Top: 2, Width: 3, Height: 4})

	c.SetBox(geom.Box{Left: 10, Top: 20, Width: 30, Height: 40})
	c.SetRect(geom.Rect{Left: 500, Top: 400, Right: 100, Bottom: 100})

	assert.Zero(t, a.queries)
	require.Len(t, a.writes, 2)
	assert.Equal(t, geom.Box{Left: 10, Top: 20, Width: 30, Height: 40}, a.writes[0])
	assert.Equal(t, geom.Box{Left: 500, Top: 400, Width: 400, Height: 300}, a.writes[1])
}

func TestRectMatchesBox(t *testing.T) {
	boxes := []geom.Box{
		{Left: 0, Top: 0, Width: 100, Height: 50},
		{Left: -1920, Top: -20, Width: 1920, Height: 1080},
		{Left: 33, Top: 44, Width: 1, Height: 0},
	}
	for _, b := range boxes {
		_, c := newArea(t, b)
		r := c.Rect()
		assert.Equal(t, geom.Rect{Left: b.Left, Top: b.Top, Right: b.Left + b.Width, Bottom: b.Top + b.Height}, r)

		c.SetRect(r)
		assert.Equal(t, b, c.Box())
	}
}

func TestCenterRoundTripEvenExtents(t *testing.T) {
	for _, b := range []geom.Box{
		{Left: 0, Top: 0, Width: 100, Height: 50},
		{Left: -300, Top: 17, Width: 2, Height: 1080},
	} {
		_, c := newArea(t, b)
		assert.Equal(t, geom.Point{X: b.Left + b.Width/2, Y: b.Top + b.Height/2}, c.Center())

		target := geom.Point{X: 640, Y: -360}
		c.SetCenter(target)
		assert.Equal(t, target, c.Center())
	}
}

func TestCenterOddExtentsFloor(t *testing.T) {
	_, c := newArea(t, geom.Box{Left: 0, Top: 0, Width: 101, Height: 51})

	assert.Equal(t, geom.Point{X: 50, Y: 25}, c.Center())

	c.SetCenter(geom.Point{X: 200, Y: 100})
	assert.Equal(t, geom.Box{Left: 150, Top: 75, Width: 101, Height: 51}, c.Box())
	assert.Equal(t, geom.Point{X: 200, Y: 100}, c.Center())
	assert.Equal(t, 251, c.Right())
}

func TestNegativeExtentsFloorDivision(t *testing.T) {
	_, c := newArea(t, geom.Box{Left: 0, Top: 0, Width: -3, Height: -5})

	assert.Equal(t, -2, c.CenterX())
	assert.Equal(t, -3, c.CenterY())
}

func TestSingleSetterLeavesOtherDimensions(t *testing.T) {
	a, c := newArea(t, geom.Box{Left: 100, Top: 100, Width: 400, Height: 300})

	c.SetRight(950)
	got := c.Box()
	assert.Equal(t, 950, got.Left+got.Width)
	assert.Equal(t, 100, got.Top)
	assert.Equal(t, 400, got.Width)
	assert.Equal(t, 300, got.Height)

	c.SetBottom(775)
	got = c.Box()
	assert.Equal(t, 550, got.Left)
	assert.Equal(t, 775, got.Top+got.Height)
	assert.Len(t, a.writes, 2)
}

// A window manager that enforces a minimum size: reads after a write must
// report what the manager applied, not what was requested.
func TestGetterObservesClampedGeometry(t *testing.T) {
	box := geom.Box{Left: 0, Top: 0, Width: 400, Height: 300}
	c, err := New(
		func() geom.Box { return box },
		func(b geom.Box) {
			b.Width = max(b.Width, 200)
			box = b
		},
	)
	require.NoError(t, err)

	c.SetWidth(50)
	assert.Equal(t, 200, c.Width())
}

func TestStringUsesCachedBox(t *testing.T) {
	a, c := newArea(t, geom.Box{Left: 1, Top: 2, Width: 3, Height: 4})
	assert.Equal(t, "(0, 0, 0, 0)", c.String())

	c.Box()
	assert.Equal(t, "(1, 2, 3, 4)", c.String())
	assert.Equal(t, "Controller(left=1, top=2, width=3, height=4)", c.GoString())
	assert.Equal(t, 1, a.queries)
}

func TestHandleFallsBackToAdapter(t *testing.T) {
	ctrl := gomock.NewController(t)
	adapter := mock_platform.NewMockAdapter(ctrl)
	win := testWindow("0x3a00007")

	adapter.EXPECT().Resolve(platform.ID(0x3a00007)).Return(win)
	gomock.InOrder(
		adapter.EXPECT().Query(win).Return(geom.Box{Left: 0, Top: 0, Width: 100, Height: 50}, nil),
		adapter.EXPECT().Set(win, geom.Box{Left: 150, Top: 0, Width: 100, Height: 50}).Return(nil),
		adapter.EXPECT().Query(win).Return(geom.Box{Left: 150, Top: 0, Width: 100, Height: 50}, nil),
	)

	c, err := New(nil, nil, WithHandle(platform.ID(0x3a00007)), WithAdapter(adapter))
	require.NoError(t, err)
	assert.Equal(t, win, c.Window())

	c.SetCenterX(200)
	assert.Equal(t, 200, c.CenterX())
}

func TestHandleWithCustomQueryUsesAdapterForSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	adapter := mock_platform.NewMockAdapter(ctrl)
	win := testWindow("w")

	adapter.EXPECT().Resolve(gomock.Any()).Return(win)
	adapter.EXPECT().Set(win, geom.Box{Left: 5, Top: 6, Width: 7, Height: 8}).Return(nil)

	queried := 0
	c, err := New(func() geom.Box {
		queried++
		return geom.Box{Left: 1, Top: 6, Width: 7, Height: 8}
	}, nil, WithHandle(platform.ID(1)), WithAdapter(adapter))
	require.NoError(t, err)

	c.SetLeft(5)
	assert.Equal(t, 1, queried)
}

func TestUnresolvedHandleMakesDefaultsNoOps(t *testing.T) {
	ctrl := gomock.NewController(t)
	adapter := mock_platform.NewMockAdapter(ctrl)

	adapter.EXPECT().Resolve(platform.HexID("zz")).Return(nil)
	adapter.EXPECT().Name().Return("win32").AnyTimes()

	c, err := New(nil, nil,
		WithHandle(platform.HexID("zz")),
		WithAdapter(adapter),
		WithLogger(quietLogger()),
	)
	require.NoError(t, err)
	assert.Nil(t, c.Window())

	c.SetBox(geom.Box{Left: 1, Top: 2, Width: 3, Height: 4})
	// No adapter calls; the cache keeps the last written box.
	assert.Equal(t, geom.Box{Left: 1, Top: 2, Width: 3, Height: 4}, c.Box())
}

func TestAdapterErrorsAreAbsorbed(t *testing.T) {
	ctrl := gomock.NewController(t)
	adapter := mock_platform.NewMockAdapter(ctrl)
	win := testWindow("gone")
	boom := errors.New("BadWindow")

	adapter.EXPECT().Resolve(gomock.Any()).Return(win)
	gomock.InOrder(
		adapter.EXPECT().Query(win).Return(geom.Box{Left: 10, Top: 10, Width: 20, Height: 20}, nil),
		adapter.EXPECT().Query(win).Return(geom.Box{}, boom),
		adapter.EXPECT().Set(win, geom.Box{Left: 99, Top: 10, Width: 20, Height: 20}).Return(boom),
	)

	c, err := New(nil, nil, WithHandle(platform.ID(7)), WithAdapter(adapter), WithLogger(quietLogger()))
	require.NoError(t, err)

	assert.Equal(t, 10, c.Left())
	// The failed query keeps the last known box, so the write is still
	// derived from it.
	c.SetLeft(99)
	assert.Equal(t, "(99, 10, 20, 20)", c.String())
}
