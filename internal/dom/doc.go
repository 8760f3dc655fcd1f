// Package dom is a small retained node tree for terminal UIs.
//
// Components that need live geometry (a highlighted button, an animated
// disclosure region, an effect overlay) own a Node. The presentation layer
// assigns layout boxes after rendering; effects read those boxes, attach
// overlay nodes and mutate visual properties (ring, fill, rotation, opacity)
// which the Compositor paints on top of the lipgloss-rendered frame.
//
// Nodes support the few platform services effects rely on:
//
//   - event listeners with click bubbling (AddEventListener, Dispatch);
//   - resize observation of explicitly laid out nodes (ObserveResize);
//   - disconnection observation when a node leaves its Document (OnDisconnect);
//   - hit testing (Document.HitTest).
//
// Like the rest of the UI loop the tree is single-threaded.
package dom
