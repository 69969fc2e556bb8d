package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-admin-panel/internal/model"
)

func TestDefault(t *testing.T) {
	data, err := Default()
	require.NoError(t, err)

	assert.Len(t, data.Nav, 7)
	assert.Equal(t, "dashboard", data.Nav[0].ID)
	assert.Len(t, data.Files, 9)
	assert.Len(t, data.News.Articles, 3)
	assert.Len(t, data.Users, 5)
	assert.Len(t, data.Logs, 8)
	assert.Len(t, data.Terminal.Welcome, 2)
	assert.Len(t, data.Dashboard.Weekly, 7)
	assert.Len(t, data.Dashboard.Traffic, 3)

	assert.Equal(t, 65.0, data.Dashboard.Stats.CPU)
	assert.Equal(t, "15d 4h 32m", data.Dashboard.Stats.Uptime)

	assert.Equal(t, "localhost", data.Settings.Connection.Host)
	assert.Equal(t, 5432, data.Settings.Database.Port)
	assert.Equal(t, "v2.0", data.Settings.API.Version)
	assert.NotNil(t, data.Settings.Security.AllowedIPs)

	logo := data.Files[7]
	assert.Equal(t, "logo.png", logo.Name)
	assert.Nil(t, logo.Content)
	require.NotNil(t, logo.Size)
	assert.Equal(t, "45 KB", *logo.Size)

	banned := data.Users[4]
	assert.Equal(t, model.RoleBanned, banned.Role)
	assert.Equal(t, -150, banned.Reputation)
	assert.Empty(t, banned.Permissions)
}

func TestDefaultTerminalOutputsKeepLayout(t *testing.T) {
	data, err := Default()
	require.NoError(t, err)

	outputs := map[string]string{}
	for _, cmd := range data.Terminal.Commands {
		outputs[cmd.Name] = cmd.Output
	}

	assert.Equal(t, "/home/user/project", outputs["pwd"])
	assert.Contains(t, outputs["free -h"], "               total")
	assert.Contains(t, outputs["top"], "\n\n  PID USER")
	assert.NotContains(t, outputs, "date")
	assert.NotContains(t, outputs, "clear")
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses embedded data", func(t *testing.T) {
		data, err := Load("")
		require.NoError(t, err)
		assert.Len(t, data.Users, 5)
	})

	t.Run("custom file replaces embedded data", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.yaml")
		content := "nav:\n  - {id: dashboard, label: Home, icon: home}\n" +
			"terminal:\n  commands:\n    - {name: hello, output: world}\n" +
			"users:\n  - {id: u1, username: solo, email: solo@example.com, role: user, status: active}\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		data, err := Load(path)
		require.NoError(t, err)
		assert.Len(t, data.Users, 1)
		assert.Equal(t, "world", data.Terminal.Commands[0].Output)
		assert.Empty(t, data.Files)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestParseRejects(t *testing.T) {
	cases := map[string]string{
		"unknown field":     "nav:\n  - {id: a, label: A, icon: x}\nbogus: 1\n",
		"empty nav":         "users: []\n",
		"duplicate user id": "nav:\n  - {id: a, label: A, icon: x}\nusers:\n  - {id: '1'}\n  - {id: '1'}\n",
		"duplicate command": "nav:\n  - {id: a, label: A, icon: x}\nterminal:\n  commands:\n    - {name: ls}\n    - {name: ls}\n",
		"log without an id": "nav:\n  - {id: a, label: A, icon: x}\nlogs:\n  - {message: hi}\n",
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(raw))
			assert.Error(t, err)
		})
	}
}
