package page

// Stylesheet styles the menu and tooltip elements. Visibility is driven by
// the shown, hidden and hiddenByDefault classes; the fade keyframes run on
// the first two.
const Stylesheet = `
body { font-family: sans-serif; margin: 2rem; }
.demo { border: 1px dashed #888; padding: 3rem; margin-bottom: 1rem; }
.contextOpen { outline: 2px solid #4a90d9; }

.contextMenuContainer { position: fixed; inset: 0; pointer-events: none; z-index: 1000; }
.contextMenu {
  position: fixed; min-width: 160px; padding: 4px 0; pointer-events: auto;
  background: #fff; border: 1px solid #ccc; border-radius: 4px;
  box-shadow: 0 2px 8px rgba(0, 0, 0, .2);
}
.contextMenu .btn {
  display: flex; align-items: center; width: 100%; height: 24px; padding: 0 8px;
  border: 0; background: none; font: inherit; text-align: left; cursor: pointer;
}
.contextMenu .btn:hover, .contextMenu .btn.selected { background: #e8f0fe; }
.contextMenu .btn.noFunction { color: #999; cursor: default; background: none; }
.contextMenu .icon { font-size: 18px; line-height: 1; }
.contextMenu .icon.withText { margin-right: 8px; }
.contextMenu .text { flex: 1; }
.contextMenu .separator { height: 8px; display: flex; align-items: center; }
.contextMenu .separator > div { width: 100%; border-top: 1px solid #ddd; }

#BreveTooltip {
  position: fixed; padding: 2px 6px; pointer-events: none; z-index: 1001;
  background: #333; color: #fff; border-radius: 3px; font-size: 12px;
}

.shown { animation-name: breveFadeIn; animation-fill-mode: forwards; }
.hidden { animation-name: breveFadeOut; animation-fill-mode: forwards; pointer-events: none !important; }
.hiddenByDefault { display: none !important; }
@keyframes breveFadeIn { from { opacity: 0; } to { opacity: 1; } }
@keyframes breveFadeOut { from { opacity: 1; } to { opacity: 0; visibility: hidden; } }

.tree { list-style: none; padding-left: 1.2rem; }
.tree .noFunction .label { color: #999; }
.tree .separator { border-top: 1px solid #ddd; margin: 4px 0; width: 10rem; }
.tree code { margin-left: .5rem; color: #666; }
`
