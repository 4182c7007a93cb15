package config

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

const VersionDev = "<dev>"

// Version is the version of the prismo application.
// It is set automatically when creating release builds.
var Version = VersionDev

// FetchLatestVersion returns the name of the latest release on GitHub.
// The answer is cached on disk for a day so repeated invocations don't
// hit the network.
func FetchLatestVersion() (string, error) {
	cacheFile, err := xdg.CacheFile(filepath.Join("prismo", "version-check"))
	if err != nil {
		return "", err
	}
	stat, _ := os.Stat(cacheFile)

	if stat != nil && time.Since(stat.ModTime()) <= (24*time.Hour) {
		data, err := os.ReadFile(cacheFile)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(
		ctx,
		"GET",
		"https://api.github.com/repos/prismo-bot/prismo/releases/latest",
		nil,
	)
	if err != nil {
		return "", err
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	var data struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return "", err
	}

	if err := os.WriteFile(cacheFile, []byte(data.Name), 0644); err != nil {
		return "", err
	}

	return data.Name, nil
}
