package server

import "net/http"

// indexHTML is the single-page viewer: pick a scene, watch scanline progress
// over the websocket, then show the finished image
const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Whitted Raytracer</title>
<style>
  body { font-family: sans-serif; margin: 2em; background: #1e1e1e; color: #ddd; }
  select, input, button { font-size: 1em; margin-right: 0.5em; }
  #progress { width: 400px; }
  #image { display: block; margin-top: 1em; border: 1px solid #555; }
  #stats { margin-top: 0.5em; color: #9a9; }
</style>
</head>
<body>
<h1>Whitted Raytracer</h1>
<div>
  <select id="scene"></select>
  <input id="width" type="number" value="400" min="1"> x
  <input id="height" type="number" value="300" min="1">
  <button id="render">Render</button>
</div>
<progress id="progress" value="0" max="1"></progress>
<div id="stats"></div>
<img id="image" alt="">
<script>
async function loadScenes() {
  const res = await fetch('/api/scenes');
  const scenes = await res.json();
  const sel = document.getElementById('scene');
  for (const s of scenes) {
    const opt = document.createElement('option');
    opt.value = s.name;
    opt.textContent = s.name + ' - ' + s.description;
    sel.appendChild(opt);
  }
}

function render() {
  const ws = new WebSocket('ws://' + location.host + '/ws/render');
  const progress = document.getElementById('progress');
  const stats = document.getElementById('stats');
  ws.onopen = () => ws.send(JSON.stringify({
    scene: document.getElementById('scene').value,
    width: parseInt(document.getElementById('width').value, 10),
    height: parseInt(document.getElementById('height').value, 10),
  }));
  ws.onmessage = (ev) => {
    const msg = JSON.parse(ev.data);
    if (msg.error) { stats.textContent = msg.error; ws.close(); return; }
    progress.value = msg.rowsDone / msg.totalRows;
    if (msg.isComplete) {
      document.getElementById('image').src = 'data:image/png;base64,' + msg.imageData;
      stats.textContent = msg.stats.totalPixels + ' pixels in ' + msg.elapsedMs + ' ms (' +
        Math.round(msg.stats.pixelsPerSecond) + ' px/s)';
      ws.close();
    }
  };
}

document.getElementById('render').addEventListener('click', render);
loadScenes();
</script>
</body>
</html>
`

// handleIndex serves the embedded viewer page
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}
