// Package selectbox provides a select control for bubbletea programs: an
// anchor box that opens a floating list of options drawn through a portal
// layer.
//
// A Select is wired to three shared services that the program creates once
// and passes in through Deps:
//
//   - outside.Broker closes the list on clicks outside the anchor and list
//   - viewmon.Monitor repositions the list on scroll and resize, and closes
//     it when the anchor scrolls out of view
//   - placement.Service computes where the list goes
//
// # Quick Start
//
//	screen := layout.NewScreen(80, 24)
//	root := portal.NewLayer()
//	deps := selectbox.Deps{
//	    Broker:   outside.NewBroker(),
//	    Monitor:  viewmon.New(screen),
//	    Placer:   placement.New(screen),
//	    Root:     root,
//	    Viewport: screen,
//	}
//
//	sel := selectbox.New(selectbox.Props{
//	    Placeholder: "Priority",
//	    Options:     []selectbox.Option{{Title: "High", Value: "P1"}},
//	    OnChange:    func(value string, opt selectbox.Option) { ... },
//	}, deps)
//	sel.Mount()
//	defer sel.Unmount()
//
//	// Render pass:
//	root.Reset()
//	box := sel.Render()
//	sel.Place(x, y)
//	view := root.Composite(page, screen)
//
// # Open state
//
// The list is shown when Props.Opened OR the internal state is true. A
// caller that sets Props.Opened cannot force the list shut while the
// internal state is open; use Close or let OnChangeOpened drive both.
// Choosing an option calls OnChange and leaves the list open.
package selectbox
