package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The page handlers serve minimal HTML shells that talk to the JSON API.
// Navigation between them is controlled by the route guard: /login and
// /register are reachable only without a session, everything else only
// with one.

func LoginPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(loginHTMLTemplate))
	}
}

func RegisterPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(registerHTMLTemplate))
	}
}

func TrackersPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(trackersHTMLTemplate))
	}
}

const loginHTMLTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Shared Flat Tracker - Log in</title>
</head>
<body>
  <h1>Log in</h1>
  <form id="login-form">
    <label>Email <input type="email" name="email" required></label>
    <label>Password <input type="password" name="password" required></label>
    <button type="submit">Log in</button>
  </form>
  <p id="error"></p>
  <p><a href="/register">Create an account</a></p>
  <script>
    document.getElementById('login-form').addEventListener('submit', async (e) => {
      e.preventDefault();
      const form = new FormData(e.target);
      const res = await fetch('/api/auth/login', {
        method: 'POST',
        headers: { 'Content-Type': 'application/json' },
        body: JSON.stringify({ email: form.get('email'), password: form.get('password') })
      });
      const data = await res.json();
      if (res.ok) {
        window.location.href = '/trackers';
      } else {
        document.getElementById('error').textContent = data.error || 'login failed';
      }
    });
  </script>
</body>
</html>
`

const registerHTMLTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Shared Flat Tracker - Register</title>
</head>
<body>
  <h1>Register</h1>
  <form id="register-form">
    <label>Email <input type="email" name="email" required></label>
    <label>Name <input type="text" name="name"></label>
    <label>Password <input type="password" name="password" required minlength="6"></label>
    <button type="submit">Register</button>
  </form>
  <p id="error"></p>
  <p><a href="/login">Already have an account?</a></p>
  <script>
    document.getElementById('register-form').addEventListener('submit', async (e) => {
      e.preventDefault();
      const form = new FormData(e.target);
      const res = await fetch('/api/auth/register', {
        method: 'POST',
        headers: { 'Content-Type': 'application/json' },
        body: JSON.stringify({
          email: form.get('email'),
          name: form.get('name'),
          password: form.get('password')
        })
      });
      const data = await res.json();
      if (res.ok) {
        window.location.href = '/trackers';
      } else {
        document.getElementById('error').textContent = data.error || 'registration failed';
      }
    });
  </script>
</body>
</html>
`

const trackersHTMLTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Shared Flat Tracker - Trackers</title>
</head>
<body>
  <h1>Your trackers</h1>
  <ul id="trackers"></ul>
  <form id="create-form">
    <label>Name <input type="text" name="name" required></label>
    <label>Description <input type="text" name="description"></label>
    <button type="submit">Create tracker</button>
  </form>
  <button id="logout">Log out</button>
  <script>
    async function loadTrackers() {
      const res = await fetch('/api/trackers');
      if (!res.ok) return;
      const trackers = await res.json();
      const list = document.getElementById('trackers');
      list.innerHTML = '';
      for (const t of trackers) {
        const item = document.createElement('li');
        item.textContent = t.name + (t.description ? ' - ' + t.description : '');
        list.appendChild(item);
      }
    }
    document.getElementById('create-form').addEventListener('submit', async (e) => {
      e.preventDefault();
      const body = new URLSearchParams(new FormData(e.target));
      const res = await fetch('/api/trackers', { method: 'POST', body });
      if (res.ok) {
        e.target.reset();
        loadTrackers();
      }
    });
    document.getElementById('logout').addEventListener('click', async () => {
      await fetch('/api/auth/logout', { method: 'POST' });
      window.location.href = '/login';
    });
    loadTrackers();
  </script>
</body>
</html>
`
