package view

const siteCSS = `
:root {
  --bg: #0a0a0a; --bg-subtle: #141414; --bg-elevated: #1a1a1a;
  --fg: #fafafa; --fg-muted: #a0a0a0; --border: rgba(255,255,255,.1);
  --accent: #6366f1; --web: #3b82f6; --iptv: #ec4899; --three-d: #8b5cf6;
}
* { box-sizing: border-box; }
body { margin: 0; background: var(--bg); color: var(--fg); font-family: Inter, system-ui, sans-serif; }
a { color: inherit; text-decoration: none; }
.container { max-width: 1200px; margin: 0 auto; padding: 0 1.5rem; }
.section { padding: 5rem 0; }
.grid-3 { display: grid; gap: 2rem; grid-template-columns: repeat(auto-fit, minmax(260px, 1fr)); }
.glass { background: rgba(255,255,255,.03); border: 1px solid var(--border); border-radius: 1rem; }
.glass-strong { background: rgba(10,10,10,.85); backdrop-filter: blur(16px); }
.gradient-text { background: linear-gradient(135deg, var(--web), var(--three-d)); -webkit-background-clip: text; background-clip: text; color: transparent; }
.gradient-web { background: linear-gradient(135deg, #3b82f6, #6366f1); color: #fff; }
.gradient-iptv { background: linear-gradient(135deg, #ec4899, #f472b6); color: #fff; }
.gradient-3d { background: linear-gradient(135deg, #8b5cf6, #a78bfa); color: #fff; }
.muted { color: var(--fg-muted); }
.navbar { position: sticky; top: 0; z-index: 50; border-bottom: 1px solid var(--border); }
.navbar-inner { display: flex; align-items: center; justify-content: space-between; height: 4rem; }
.brand { display: flex; gap: .5rem; font-weight: 700; font-size: 1.125rem; }
.nav-links { display: flex; gap: .25rem; flex-wrap: wrap; }
.nav-link { padding: .5rem 1rem; border-radius: .5rem; font-size: .875rem; color: var(--fg-muted); }
.nav-link.active { color: var(--fg); background: var(--bg-elevated); box-shadow: inset 0 -2px 0 var(--accent); }
.btn { display: inline-block; padding: 1rem 2rem; border-radius: .5rem; font-weight: 600; border: 1px solid transparent; cursor: pointer; font: inherit; }
.btn-primary { background: linear-gradient(135deg, #3b82f6, #6366f1); color: #fff; }
.btn-outline { border-color: var(--border); background: transparent; color: var(--fg); }
.btn[disabled] { opacity: .5; cursor: not-allowed; }
.hero { position: relative; min-height: 80vh; overflow: hidden; display: flex; align-items: center; justify-content: center; text-align: center; }
.hero video, .hero .hero-poster { position: absolute; inset: 0; width: 100%; height: 100%; object-fit: cover; }
.hero .hero-poster { filter: blur(20px); transform: scale(1.1); }
.hero-overlay { position: absolute; inset: 0; }
.hero-content { position: relative; z-index: 2; }
.hero h1 { font-size: clamp(2.5rem, 6vw, 4.5rem); margin: 0 0 1rem; }
.glow-card { position: relative; padding: 2rem; border-radius: 1rem; border: 1px solid var(--border); background: var(--bg-elevated); overflow: hidden; }
.glow-card::before { content: ""; position: absolute; inset: -1px; opacity: 0; transition: opacity .3s; pointer-events: none;
  background: radial-gradient(650px circle at var(--mx, 50%) var(--my, 50%), var(--glow), transparent 80%); }
.glow-card:hover::before { opacity: 1; }
.glow-card > * { position: relative; }
.filters { display: flex; gap: .5rem; justify-content: center; margin-bottom: 2rem; }
.filters a { padding: .5rem 1rem; border-radius: 999px; border: 1px solid var(--border); }
.filters a.active { background: var(--three-d); }
.gallery-item { padding: 0; text-align: left; color: inherit; cursor: pointer; }
.gallery-item img { width: 100%; aspect-ratio: 16/9; object-fit: cover; border-radius: 1rem 1rem 0 0; display: block; }
.gallery-item div { padding: 1rem; }
dialog.lightbox { max-width: 960px; width: 90vw; background: var(--bg-elevated); color: var(--fg); border: 1px solid var(--border); border-radius: 1rem; }
dialog.lightbox::backdrop { background: rgba(0,0,0,.85); }
dialog.lightbox video { width: 100%; border-radius: .5rem; }
.terminal { border-radius: 1rem; overflow: hidden; border: 1px solid var(--border); }
.terminal-bar { display: flex; gap: .5rem; align-items: center; padding: .75rem 1rem; background: var(--bg-elevated); font-size: .875rem; }
.terminal-bar .dot { width: .75rem; height: .75rem; border-radius: 50%; }
.terminal pre { margin: 0; padding: 1.5rem; min-height: 16rem; font: .875rem/1.6 "Geist Mono", ui-monospace, monospace; overflow-x: auto; }
.terminal .ln { color: #52525b; user-select: none; display: inline-block; width: 2rem; text-align: right; margin-right: 1rem; }
.terminal .chroma { background: transparent; }
.caret { display: inline-block; width: .5rem; height: 1.1rem; background: var(--accent); vertical-align: text-bottom; animation: blink 1s steps(1) infinite; }
@keyframes blink { 50% { opacity: 0; } }
.iptv-preview { background: var(--iptv-background); color: var(--iptv-text); font-family: var(--iptv-font); padding: 2rem; border-radius: var(--iptv-radius); border: 1px solid var(--iptv-border); box-shadow: var(--iptv-shadow); }
.iptv-preview h3 { color: var(--iptv-primary); font-weight: var(--iptv-heading-weight); }
.iptv-channel { background: var(--iptv-surface); padding: var(--iptv-card-padding); border-radius: var(--iptv-radius); border: 1px solid var(--iptv-border); }
.iptv-channel:hover { box-shadow: var(--iptv-glow); }
.iptv-channel small { color: var(--iptv-text-muted); }
.iptv-live { color: var(--iptv-accent); }
.steps { display: flex; justify-content: space-between; margin-bottom: 3rem; }
.step { display: flex; flex-direction: column; align-items: center; gap: .5rem; color: var(--fg-muted); flex: 1; }
.step .bubble { width: 2.5rem; height: 2.5rem; border-radius: 50%; display: flex; align-items: center; justify-content: center; background: var(--bg-subtle); }
.step.reached .bubble { background: var(--accent); color: #fff; }
.vibes button { width: 100%; text-align: left; padding: 2rem; color: inherit; cursor: pointer; }
.vibes button.selected { box-shadow: 0 0 24px var(--accent); }
.field { display: flex; flex-direction: column; gap: .5rem; margin-bottom: 1.5rem; }
.field input, .field textarea { padding: .75rem 1rem; border-radius: .5rem; border: 1px solid var(--border); background: var(--bg-subtle); color: var(--fg); font: inherit; }
.alert { padding: 1rem; border-radius: .5rem; border: 1px solid #f87171; color: #fecaca; margin-bottom: 1.5rem; }
.cursor { position: fixed; top: 0; left: 0; pointer-events: none; z-index: 100; display: none; }
.cursor-dot { width: 8px; height: 8px; border-radius: 50%; background: var(--accent); transform: translate(-50%, -50%); }
.cursor-ring { position: absolute; top: 0; left: 0; width: 32px; height: 32px; border-radius: 50%; border: 1px solid var(--accent); transform: translate(-50%, -50%); transition: width .2s, height .2s; }
body[data-cursor="web"] .cursor { --accent: var(--web); }
body[data-cursor="iptv"] .cursor { --accent: var(--iptv); }
body[data-cursor="3d"] .cursor { --accent: var(--three-d); }
@media (pointer: fine) { .cursor { display: block; } }
.site-footer { padding: 3rem 1.5rem; color: var(--fg-muted); font-size: .875rem; border-top: 1px solid var(--border); }
`

// siteJS runs the client-only effects; every page works without it.
const siteJS = `
(function () {
  var cursor = document.getElementById("cursor");
  if (cursor && window.matchMedia("(pointer: fine)").matches) {
    document.addEventListener("mousemove", function (e) {
      cursor.style.transform = "translate(" + e.clientX + "px," + e.clientY + "px)";
    });
  }

  document.querySelectorAll(".glow-card").forEach(function (card) {
    card.addEventListener("mousemove", function (e) {
      var r = card.getBoundingClientRect();
      card.style.setProperty("--mx", (e.clientX - r.left) + "px");
      card.style.setProperty("--my", (e.clientY - r.top) + "px");
    });
  });

  document.querySelectorAll("[data-typewriter]").forEach(function (el) {
    var out = el.querySelector("code");
    var snippets = el.querySelectorAll("template");
    var speed = parseInt(el.dataset.speed, 10) || 30;
    var pause = parseInt(el.dataset.pause, 10) || 2000;
    var i = 0;
    function play() {
      var tpl = snippets[i];
      var text = tpl.dataset.text;
      var n = 0;
      (function type() {
        if (n <= text.length) {
          out.textContent = text.slice(0, n++);
          setTimeout(type, speed);
          return;
        }
        out.innerHTML = tpl.innerHTML;
        setTimeout(function () { i = (i + 1) % snippets.length; play(); }, pause);
      })();
    }
    if (snippets.length) play();
  });

  document.querySelectorAll("form[data-intake-details]").forEach(function (form) {
    var submit = form.querySelector("button[value=submit]");
    var required = form.querySelectorAll("[required]");
    function sync() {
      var ok = Array.prototype.every.call(required, function (f) { return f.value.trim() !== ""; });
      submit.disabled = !ok;
    }
    form.addEventListener("input", sync);
    form.addEventListener("submit", function (e) {
      if (e.submitter === submit) { setTimeout(function () { submit.disabled = true; submit.textContent = "Sending…"; }, 0); }
    });
  });
})();
`
