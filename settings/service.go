package settings

import (
	_ "embed"
	"encoding/json"
	"sync"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/mitchellh/mapstructure"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON string

var settingsSchema = jsonschema.MustCompileString("archsan-settings.schema.json", schemaJSON)

type Service interface {
	LoadSettings() error

	// GetSettings returns the last successfully loaded settings.
	GetSettings() Settings
}

const settingsServiceLogTag = "settingsService"

type settingsService struct {
	fs            boshsys.FileSystem
	settingsPath  string
	settings      Settings
	settingsMutex sync.Mutex
	logger        boshlog.Logger
}

func NewService(fs boshsys.FileSystem, settingsPath string, logger boshlog.Logger) Service {
	return &settingsService{
		fs:           fs,
		settingsPath: settingsPath,
		logger:       logger,
	}
}

func (s *settingsService) LoadSettings() error {
	s.logger.Debug(settingsServiceLogTag, "Loading settings from %s", s.settingsPath)

	contents, err := s.fs.ReadFile(s.settingsPath)
	if err != nil {
		return bosherr.WrapErrorf(err, "Reading settings file '%s'", s.settingsPath)
	}

	newSettings, err := ParseSettings(contents)
	if err != nil {
		return bosherr.WrapErrorf(err, "Parsing settings file '%s'", s.settingsPath)
	}

	s.settingsMutex.Lock()
	s.settings = newSettings
	s.settingsMutex.Unlock()

	s.logger.Debug(settingsServiceLogTag, "Successfully loaded %d block devices", len(newSettings.BlockDevices))
	return nil
}

func (s *settingsService) GetSettings() Settings {
	s.settingsMutex.Lock()
	defer s.settingsMutex.Unlock()

	return s.settings
}

// ParseSettings validates a YAML document against the settings schema and
// decodes it.
func ParseSettings(contents []byte) (Settings, error) {
	var raw map[string]interface{}

	err := yaml.Unmarshal(contents, &raw)
	if err != nil {
		return Settings{}, bosherr.WrapError(err, "Unmarshalling settings yaml")
	}

	// The schema validator expects JSON values, e.g. float64 instead of int.
	rawJSON, err := json.Marshal(raw)
	if err != nil {
		return Settings{}, bosherr.WrapError(err, "Converting settings to json")
	}

	var document interface{}
	err = json.Unmarshal(rawJSON, &document)
	if err != nil {
		return Settings{}, bosherr.WrapError(err, "Converting settings to json")
	}

	err = settingsSchema.Validate(document)
	if err != nil {
		return Settings{}, bosherr.WrapError(err, "Validating settings")
	}

	var settings Settings
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &settings,
	})
	if err != nil {
		return Settings{}, bosherr.WrapError(err, "Building settings decoder")
	}

	err = decoder.Decode(raw)
	if err != nil {
		return Settings{}, bosherr.WrapError(err, "Decoding settings")
	}

	return settings, nil
}
