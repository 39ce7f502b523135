// Package handwritten drives a word clock face built from pre-rendered
// tiles on a memory-constrained display.
//
// The face has three fixed slots stacked vertically:
//
//	slot 0  hour           "twelve"
//	slot 1  minute word    "thirty"
//	slot 2  minute units   "seven"
//
// Only the three resident tiles are kept in memory. Each slot owns its own
// tile even when two slots show the same word, because a tile is bound to
// one on-screen element.
//
// # Time to tiles
//
// ComputeValues maps a time to three tile codes. Minutes up to twenty are a
// single word; past twenty the tens are a word ("thirty", "forty", "fifty")
// and the units, if any, go in slot 2:
//
//	09:20  nine, twenty
//	09:21  nine, twenty, one
//	09:30  nine, thirty
//	09:37  nine, thirty, seven
//
// # Reveal
//
// A newly loaded tile is covered by an overlay in the background colour,
// which then slides one screen width to the right. When several slots
// change on the same tick their reveals are staggered, each waiting until
// the previous word is uncovered enough to read, so the new time cascades
// in from the top:
//
//	changes  slot 0  slot 1         slot 2
//	3        0       ratio(last)    ratio(last)+ratio(before last)
//	2        -       0              ratio(last)
//	1        -       -              0
//
// # Collaborators
//
// The package only decides what to show and when. Drawing is delegated to
// an ImageSource (tiles), a Compositor (layers) and an Animator (overlay
// motion). The glyph, scene and animate packages provide implementations,
// and the ssd1322 package drives a real panel:
//
//	src, _ := glyph.New(&glyph.Opts{Size: handwritten.Layout{Screen: screen}.TileSize()})
//	sc := scene.New(screen)
//	engine := animate.NewEngine(nil)
//	face, _ := handwritten.New(src, sc, engine, &handwritten.Opts{Screen: screen})
//
//	face.Refresh()
//	for {
//		select {
//		case t := <-minutes.C:
//			face.Tick(t)
//		case <-frames.C:
//			engine.Step()
//			sc.Flush(dev)
//		}
//	}
//
// Face, Store and the provided collaborators are not safe for concurrent
// use; run them from a single event loop.
package handwritten
