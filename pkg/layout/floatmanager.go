package layout

import "flotilla/pkg/css"

// FloatManager tracks the floated boxes of one block formatting
// context and answers, for any block-axis band, the inline region that
// content may flow into (CSS 2.1 §9.5). It belongs exclusively to the
// reflow pass that created it; nothing here is safe for concurrent
// use.
type FloatManager struct {
	wm WritingMode

	// Origin translation applied to new floats and to query
	// coordinates. Stored floats are never re-translated.
	lineLeft, blockStart Coord

	floats []FloatInfo

	damage IntervalSet

	// Set by pagination when a float of that side was pushed past, or
	// split across, a page/column break; consulted by ClearFloats.
	pushedLeftPastBreak   bool
	pushedRightPastBreak  bool
	splitLeftAcrossBreak  bool
	splitRightAcrossBreak bool
}

// NewFloatManager returns a manager for the given writing mode,
// reusing a cached instance when one is available.
func NewFloatManager(wm WritingMode) *FloatManager {
	m := managerCache.take()
	if m == nil {
		m = &FloatManager{}
	}
	m.reset(wm)
	return m
}

func (m *FloatManager) reset(wm WritingMode) {
	m.wm = wm
	m.lineLeft = 0
	m.blockStart = 0
	m.floats = m.floats[:0]
	m.damage.Clear()
	m.pushedLeftPastBreak = false
	m.pushedRightPastBreak = false
	m.splitLeftAcrossBreak = false
	m.splitRightAcrossBreak = false
}

// Release returns the manager to the instance cache. The caller must
// not use it afterwards.
func (m *FloatManager) Release() {
	managerCache.put(m)
}

// Translate moves the origin. Subsequent floats and queries are offset
// by the accumulated translation; floats already stored keep the
// coordinates they were inserted with.
func (m *FloatManager) Translate(dLineLeft, dBlockStart Coord) {
	m.lineLeft += dLineLeft
	m.blockStart += dBlockStart
}

// Origin returns the current translation.
func (m *FloatManager) Origin() (lineLeft, blockStart Coord) {
	return m.lineLeft, m.blockStart
}

// HasAnyFloats reports whether any floats are registered.
func (m *FloatManager) HasAnyFloats() bool {
	return len(m.floats) > 0
}

// BandInfoType selects how GetFlowArea treats the band's block extent.
type BandInfoType int

const (
	// BandFromPoint finds the first uniform band at the given block
	// coordinate: the returned block size shrinks so that no float
	// edge crosses the band's interior.
	BandFromPoint BandInfoType = iota
	// WidthWithinHeight keeps the caller's exact block extent and
	// returns the narrowest inline extent that avoids every float
	// anywhere within it.
	WidthWithinHeight
)

// FlowArea is the result of GetFlowArea: the available inline span at
// a band, in the caller's logical coordinates.
type FlowArea struct {
	InlineStart Coord
	BlockStart  Coord
	ISize       Coord
	BSize       Coord

	// HasFloats is true only when a float's exclusion actually
	// intruded on the content area's inline span, not merely when a
	// float exists somewhere in the band.
	HasFloats bool
}

// GetFlowArea computes the available space for content at the band
// starting at bCoord (relative to the current origin) with block size
// bSize. bSize may be CoordMax only with BandFromPoint. contentArea is
// the containing block's inline span; state, when non-nil, restricts
// the query to the floats that existed when the state was pushed.
func (m *FloatManager) GetFlowArea(wm WritingMode, bCoord, bSize Coord,
	bandType BandInfoType, shapeType ShapeType, contentArea LogicalRect,
	state *SavedState, container Size) FlowArea {

	assert(m.wm.Compatible(wm), "incompatible writing modes")
	assert(bSize >= 0, "unexpected block size")
	assert(contentArea.ISize >= 0, "unexpected content area inline size")

	blockStart := SatAdd(bCoord, m.blockStart)

	floatCount := len(m.floats)
	if state != nil {
		assert(state.floatCount <= floatCount, "bad saved state")
		floatCount = state.floatCount
	}

	// Nothing to do when there are no floats, or the band is entirely
	// below the deepest one.
	if floatCount == 0 ||
		(m.floats[floatCount-1].LeftBEnd <= blockStart &&
			m.floats[floatCount-1].RightBEnd <= blockStart) {
		return FlowArea{
			InlineStart: contentArea.IStart,
			BlockStart:  bCoord,
			ISize:       contentArea.ISize,
			BSize:       bSize,
		}
	}

	var blockEnd Coord
	if bSize == CoordMax {
		assert(bandType == BandFromPoint, "bad height")
		blockEnd = CoordMax
	} else {
		blockEnd = SatAdd(blockStart, bSize)
	}

	lineLeft := m.lineLeft + contentArea.LineLeft(wm, container)
	lineRight := m.lineLeft + contentArea.LineRight(wm, container)
	if lineRight < lineLeft {
		logger.Warn("bad content area", "lineLeft", lineLeft, "lineRight", lineRight)
		lineRight = lineLeft
	}

	// Walk backwards until we're above blockStart on both sides; the
	// cumulative bEnds guarantee nothing earlier can intersect.
	haveFloats := false
	for i := floatCount; i > 0; i-- {
		fi := &m.floats[i-1]
		if fi.LeftBEnd <= blockStart && fi.RightBEnd <= blockStart {
			break
		}
		if fi.IsEmpty(shapeType) {
			// Empty float areas don't affect the flow
			// (https://drafts.csswg.org/css-shapes/#relation-to-box-model-and-float-behavior).
			continue
		}

		floatBStart := fi.BStart(shapeType)
		floatBEnd := fi.BEnd(shapeType)
		if blockStart < floatBStart && bandType == BandFromPoint {
			// Float below the band; clip the band's height to it.
			if floatBStart < blockEnd {
				blockEnd = floatBStart
			}
		} else if blockStart < floatBEnd &&
			(floatBStart < blockEnd ||
				(floatBStart == blockEnd && blockStart == blockEnd)) {
			// The float is in the band. A zero-height
			// WidthWithinHeight band also takes floats that begin
			// exactly at it, keeping such a query at least as narrow
			// as a BandFromPoint query at the same coordinate.

			side := physicalFloatSide(fi.Frame, wm)

			// Under BandFromPoint only the point itself matters to the
			// shape, not the still-shrinking band end.
			bandBlockEnd := blockEnd
			if bandType == BandFromPoint {
				bandBlockEnd = blockStart
			}
			if side == css.FloatLeft {
				lineRightEdge := fi.LineRight(shapeType, blockStart, bandBlockEnd)
				if lineRightEdge > lineLeft {
					lineLeft = lineRightEdge
					// Only counts as "has floats" when the exclusion
					// is inside the containing block's span.
					haveFloats = true
				}
			} else {
				lineLeftEdge := fi.LineLeft(shapeType, blockStart, bandBlockEnd)
				if lineLeftEdge < lineRight {
					lineRight = lineLeftEdge
					haveFloats = true
				}
			}

			if floatBEnd < blockEnd && bandType == BandFromPoint {
				blockEnd = floatBEnd
			}
		}
	}

	blockSize := CoordMax
	if blockEnd != CoordMax {
		blockSize = blockEnd - blockStart
	}
	// Convert the line-relative result back to inline-start-relative.
	inlineStart := lineLeft - m.lineLeft
	if !wm.IsBidiLTR() {
		inlineStart = m.lineLeft - lineRight + wm.ContainerISize(container)
	}

	if Noisy {
		logger.Debug("flow area",
			"bCoord", bCoord, "bSize", bSize,
			"inlineStart", inlineStart, "iSize", lineRight-lineLeft,
			"blockSize", blockSize, "hasFloats", haveFloats)
	}

	return FlowArea{
		InlineStart: inlineStart,
		BlockStart:  blockStart - m.blockStart,
		ISize:       lineRight - lineLeft,
		BSize:       blockSize,
		HasFloats:   haveFloats,
	}
}

// AddFloat registers a float's margin rect, translated by the current
// origin, and derives its shape-outside strategy from its style.
func (m *FloatManager) AddFloat(frame Frame, marginRect LogicalRect,
	wm WritingMode, container Size) {

	assert(m.wm.Compatible(wm), "incompatible writing modes")
	assert(marginRect.ISize >= 0, "negative inline size")
	assert(marginRect.BSize >= 0, "negative block size")

	info := newFloatInfo(frame, m.lineLeft, m.blockStart, marginRect, wm, container)

	if len(m.floats) > 0 {
		tail := &m.floats[len(m.floats)-1]
		info.LeftBEnd = tail.LeftBEnd
		info.RightBEnd = tail.RightBEnd
	} else {
		info.LeftBEnd = CoordMin
		info.RightBEnd = CoordMin
	}

	side := physicalFloatSide(frame, wm)
	assert(side == css.FloatLeft || side == css.FloatRight, "unexpected float side")
	thisBEnd := info.BEnd(ShapeTypeMargin)
	if side == css.FloatLeft {
		if thisBEnd > info.LeftBEnd {
			info.LeftBEnd = thisBEnd
		}
	} else {
		if thisBEnd > info.RightBEnd {
			info.RightBEnd = thisBEnd
		}
	}

	if Noisy {
		logger.Debug("add float",
			"side", side, "rect", info.Rect,
			"leftBEnd", info.LeftBEnd, "rightBEnd", info.RightBEnd)
	}
	m.floats = append(m.floats, info)
}

// RemoveTrailingRegions drops trailing registry entries whose frame is
// in the given list, stopping at the first trailing entry that is not.
// Entries before that boundary stay even if listed: removing interior
// entries would invalidate the cumulative block-end summaries.
func (m *FloatManager) RemoveTrailingRegions(frames []Frame) {
	if len(frames) == 0 {
		return
	}
	frameSet := make(map[Frame]struct{}, len(frames))
	for _, f := range frames {
		frameSet[f] = struct{}{}
	}

	newLength := len(m.floats)
	for newLength > 0 {
		if _, ok := frameSet[m.floats[newLength-1].Frame]; !ok {
			break
		}
		newLength--
	}
	m.floats = m.floats[:newLength]

	for i := range m.floats {
		_, ok := frameSet[m.floats[i].Frame]
		assert(!ok, "float removal requested for a non-trailing entry")
	}
}

// SavedState is a checkpoint of the manager's origin, break flags, and
// float count. The damage record is deliberately not part of it.
type SavedState struct {
	lineLeft, blockStart  Coord
	pushedLeftPastBreak   bool
	pushedRightPastBreak  bool
	splitLeftAcrossBreak  bool
	splitRightAcrossBreak bool
	floatCount            int
}

// PushState checkpoints the manager so a speculative reflow can be
// undone. Only the origin, break flags, and float count are saved;
// damage keeps accumulating across push/pop so that a float moved
// during a discarded trial and again during the final reflow still
// damages every position it occupied.
func (m *FloatManager) PushState(state *SavedState) {
	assert(state != nil, "need a place to save state")
	if state == nil {
		return
	}
	state.lineLeft = m.lineLeft
	state.blockStart = m.blockStart
	state.pushedLeftPastBreak = m.pushedLeftPastBreak
	state.pushedRightPastBreak = m.pushedRightPastBreak
	state.splitLeftAcrossBreak = m.splitLeftAcrossBreak
	state.splitRightAcrossBreak = m.splitRightAcrossBreak
	state.floatCount = len(m.floats)
	if Noisy {
		logger.Debug("push state", "floatCount", state.floatCount)
	}
}

// PopState restores a checkpoint taken by PushState, discarding floats
// added since.
func (m *FloatManager) PopState(state *SavedState) {
	assert(state != nil, "no state to restore")
	if state == nil {
		return
	}
	m.lineLeft = state.lineLeft
	m.blockStart = state.blockStart
	m.pushedLeftPastBreak = state.pushedLeftPastBreak
	m.pushedRightPastBreak = state.pushedRightPastBreak
	m.splitLeftAcrossBreak = state.splitLeftAcrossBreak
	m.splitRightAcrossBreak = state.splitRightAcrossBreak

	assert(state.floatCount <= len(m.floats), "misused PushState/PopState")
	if state.floatCount <= len(m.floats) {
		m.floats = m.floats[:state.floatCount]
	}
	if Noisy {
		logger.Debug("pop state", "floatCount", state.floatCount)
	}
}

// GetLowestFloatTop returns the block-start of the most recently added
// float, translated to the caller's coordinates. Returns CoordMax when
// a float was pushed past a break (its position is unresolved) and
// CoordMin when the registry is empty. The reflow driver uses it to
// check for forward progress.
func (m *FloatManager) GetLowestFloatTop() Coord {
	if m.pushedLeftPastBreak || m.pushedRightPastBreak {
		return CoordMax
	}
	if !m.HasAnyFloats() {
		return CoordMin
	}
	return m.floats[len(m.floats)-1].BStart(ShapeTypeMargin) - m.blockStart
}

// ClearFlags modify ClearFloats.
type ClearFlags uint32

const (
	// DontClearPushedFloats computes clearance from the registered
	// floats even when floats were pushed past or split across a
	// break.
	DontClearPushedFloats ClearFlags = 1 << iota
)

// ClearFloats returns the block coordinate content must move to in
// order to clear past floats of the given side(s), relative to the
// current origin. When clearance cannot be resolved because the floats
// continue past a break, it returns CoordMax.
func (m *FloatManager) ClearFloats(bCoord Coord, breakType css.ClearType,
	flags ClearFlags) Coord {

	if flags&DontClearPushedFloats == 0 && m.ClearContinues(breakType) {
		return CoordMax
	}
	if !m.HasAnyFloats() {
		return bCoord
	}

	blockEnd := SatAdd(bCoord, m.blockStart)

	tail := &m.floats[len(m.floats)-1]
	switch breakType {
	case css.ClearBoth:
		blockEnd = maxCoord(blockEnd, tail.LeftBEnd)
		blockEnd = maxCoord(blockEnd, tail.RightBEnd)
	case css.ClearLeft:
		blockEnd = maxCoord(blockEnd, tail.LeftBEnd)
	case css.ClearRight:
		blockEnd = maxCoord(blockEnd, tail.RightBEnd)
	}

	return blockEnd - m.blockStart
}

// ClearContinues reports whether clearance for the given side(s) is
// unresolvable because a float of that side was pushed past or split
// across a break.
func (m *FloatManager) ClearContinues(breakType css.ClearType) bool {
	return ((m.pushedLeftPastBreak || m.splitLeftAcrossBreak) &&
		(breakType == css.ClearBoth || breakType == css.ClearLeft)) ||
		((m.pushedRightPastBreak || m.splitRightAcrossBreak) &&
			(breakType == css.ClearBoth || breakType == css.ClearRight))
}

// Break-continuation flags, set by pagination.

func (m *FloatManager) PushedLeftFloatPastBreak() bool  { return m.pushedLeftPastBreak }
func (m *FloatManager) PushedRightFloatPastBreak() bool { return m.pushedRightPastBreak }

func (m *FloatManager) SetPushedLeftFloatPastBreak(v bool)  { m.pushedLeftPastBreak = v }
func (m *FloatManager) SetPushedRightFloatPastBreak(v bool) { m.pushedRightPastBreak = v }

func (m *FloatManager) SplitLeftFloatAcrossBreak() bool  { return m.splitLeftAcrossBreak }
func (m *FloatManager) SplitRightFloatAcrossBreak() bool { return m.splitRightAcrossBreak }

func (m *FloatManager) SetSplitLeftFloatAcrossBreak(v bool)  { m.splitLeftAcrossBreak = v }
func (m *FloatManager) SetSplitRightFloatAcrossBreak(v bool) { m.splitRightAcrossBreak = v }

// IncludeInDamage records a block-axis range (relative to the current
// origin) into the damage record.
func (m *FloatManager) IncludeInDamage(bStart, bEnd Coord) {
	m.damage.Include(SatAdd(bStart, m.blockStart), SatAdd(bEnd, m.blockStart))
}

// IntersectsDamage reports whether the given block-axis range overlaps
// any damaged range.
func (m *FloatManager) IntersectsDamage(bStart, bEnd Coord) bool {
	return m.damage.Intersects(SatAdd(bStart, m.blockStart), SatAdd(bEnd, m.blockStart))
}

// Damage exposes the damage record for the reflow driver to inspect
// between reflows.
func (m *FloatManager) Damage() *IntervalSet {
	return &m.damage
}

// List dumps the registry through the package logger, for debugging.
func (m *FloatManager) List() {
	if !m.HasAnyFloats() {
		return
	}
	for i := range m.floats {
		fi := &m.floats[i]
		logger.Info("float",
			"index", i,
			"rect", fi.Rect,
			"leftBEnd", fi.LeftBEnd,
			"rightBEnd", fi.RightBEnd)
	}
}
