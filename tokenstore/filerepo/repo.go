package filerepo

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/smartmail/go-assistant-client/tokenstore"
)

const credentialsFile = "credentials.json"

var _ tokenstore.Repo = (*FileTokenRepo)(nil)

// storedCredentials is the on-disk layout: a single opaque bearer token
// under a fixed key.
type storedCredentials struct {
	AccessToken string `json:"access_token"`
}

// FileTokenRepo persists the bearer token as a JSON file inside the client's
// data folder. Writes go through a temp file and rename so a crash never
// leaves a half-written credentials file.
type FileTokenRepo struct {
	path string
	lock sync.Mutex
}

func New(dataFolder string) (*FileTokenRepo, error) {
	if dataFolder == "" {
		return nil, errors.New("[filerepo.New] data folder is required")
	}
	if err := os.MkdirAll(dataFolder, 0o700); err != nil {
		return nil, errors.Wrap(err, "[filerepo.New] MkdirAll")
	}
	return &FileTokenRepo{path: filepath.Join(dataFolder, credentialsFile)}, nil
}

func (r *FileTokenRepo) Save(token string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	data, err := json.Marshal(storedCredentials{AccessToken: token})
	if err != nil {
		return errors.Wrap(err, "[FileTokenRepo.Save] Marshal")
	}

	tmpPath := r.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return errors.Wrap(err, "[FileTokenRepo.Save] WriteFile")
	}
	if err := os.Rename(tmpPath, r.path); err != nil {
		return errors.Wrap(err, "[FileTokenRepo.Save] Rename")
	}
	return nil
}

func (r *FileTokenRepo) Load() (string, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return "", tokenstore.NoTokenErr
	}
	if err != nil {
		return "", errors.Wrap(err, "[FileTokenRepo.Load] ReadFile")
	}

	var creds storedCredentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return "", errors.Wrap(err, "[FileTokenRepo.Load] Unmarshal")
	}
	if creds.AccessToken == "" {
		return "", tokenstore.NoTokenErr
	}
	return creds.AccessToken, nil
}

func (r *FileTokenRepo) Clear() error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "[FileTokenRepo.Clear] Remove")
	}
	return nil
}
