package usecase

const successHTML = `<!DOCTYPE html>
<html>
<head>
  <title>ClickUp Connected</title>
  <style>
    body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; display: flex; align-items: center; justify-content: center; height: 100vh; margin: 0; background: #fafafa; }
    .card { text-align: center; padding: 2rem 3rem; background: #fff; border-radius: 8px; box-shadow: 0 1px 4px rgba(0,0,0,0.1); }
    h1 { color: #2ea44f; margin-bottom: 0.5rem; }
    p { color: #555; }
  </style>
</head>
<body>
  <div class="card">
    <h1>Connected to ClickUp</h1>
    <p>Authorization complete. You can close this window and return to the app.</p>
  </div>
</body>
</html>`

const errorHTML = `<!DOCTYPE html>
<html>
<head>
  <title>ClickUp Connection Failed</title>
  <style>
    body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; display: flex; align-items: center; justify-content: center; height: 100vh; margin: 0; background: #fafafa; }
    .card { text-align: center; padding: 2rem 3rem; background: #fff; border-radius: 8px; box-shadow: 0 1px 4px rgba(0,0,0,0.1); }
    h1 { color: #d73a49; margin-bottom: 0.5rem; }
    p { color: #555; }
  </style>
</head>
<body>
  <div class="card">
    <h1>Authorization Failed</h1>
    <p>ClickUp reported an error. Close this window and try connecting again.</p>
  </div>
</body>
</html>`
