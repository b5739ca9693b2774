package reduktd

import (
	"fmt"
	"io/ioutil"
	"log"
	"path/filepath"
	"reflect"

	"github.com/SSSOC-CAN/redukt/utils"
	yaml "gopkg.in/yaml.v2"
)

// Config is the object which will hold all of the config parameters
type Config struct {
	DefaultLogDir   bool   `yaml:"DefaultLogDir"`
	LogFileDir      string `yaml:"LogFileDir"`
	MaxLogFileSize  int64  `yaml:"MaxLogFileSize"` // MB
	MaxLogFiles     int64  `yaml:"MaxLogFiles"`
	ConsoleOutput   bool   `yaml:"ConsoleOutput"`
	SessionInterval int64  `yaml:"SessionInterval"` // seconds
}

var (
	default_session_interval  int64 = 10
	default_max_log_file_size int64 = 10
	default_max_log_files     int64 = 3
	default_log_dir                 = func() string {
		return utils.AppDataDir("reduktd")
	}
	default_config = func() Config {
		return Config{
			DefaultLogDir:   true,
			LogFileDir:      default_log_dir(),
			MaxLogFileSize:  default_max_log_file_size,
			MaxLogFiles:     default_max_log_files,
			ConsoleOutput:   false,
			SessionInterval: default_session_interval,
		}
	}
)

// InitConfig returns the `Config` struct with either default values or values specified in `config.yaml`
func InitConfig() Config {
	filename, _ := filepath.Abs(filepath.Join(default_log_dir(), "config.yaml"))
	return load_config(filename)
}

// load_config reads the given yaml file and falls back to the default config if it
// cannot be read or parsed
func load_config(filename string) Config {
	config_file, err := ioutil.ReadFile(filename)
	if err != nil {
		return default_config()
	}
	var config Config
	err = yaml.Unmarshal(config_file, &config)
	if err != nil {
		log.Println(err)
		config = default_config()
	} else {
		// Need to check if any config parameters aren't defined in `config.yaml` and assign them a default value
		config = check_yaml_config(config)
	}
	return config
}

// change_field changes the value of a specified field from the config struct
func change_field(field reflect.Value, new_value interface{}) {
	if field.IsValid() {
		if field.CanSet() {
			f := field.Kind()
			switch f {
			case reflect.String:
				if v, ok := new_value.(string); ok {
					field.SetString(v)
				} else {
					log.Fatal(fmt.Sprintf("Type of new_value: %v does not match the type of the field: string", new_value))
				}
			case reflect.Bool:
				if v, ok := new_value.(bool); ok {
					field.SetBool(v)
				} else {
					log.Fatal(fmt.Sprintf("Type of new_value: %v does not match the type of the field: bool", new_value))
				}
			case reflect.Int64:
				if v, ok := new_value.(int64); ok {
					field.SetInt(v)
				} else {
					log.Fatal(fmt.Sprintf("Type of new_value: %v does not match the type of the field: int64", new_value))
				}
			}
		}
	}
}

// check_yaml_config iterates over the Config struct fields and changes blank fields to default values
func check_yaml_config(config Config) Config {
	pv := reflect.ValueOf(&config)
	v := pv.Elem()
	field_names := v.Type()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		field_name := field_names.Field(i).Name
		switch field_name {
		case "LogFileDir":
			if f.String() == "" {
				change_field(f, default_log_dir())
				dld := v.FieldByName("DefaultLogDir")
				change_field(dld, true)
			}
		case "MaxLogFileSize":
			if f.Int() == 0 {
				change_field(f, default_max_log_file_size)
			}
		case "MaxLogFiles":
			if f.Int() == 0 {
				change_field(f, default_max_log_files)
			}
		case "SessionInterval":
			if f.Int() == 0 {
				change_field(f, default_session_interval)
			}
		}
	}
	return config
}
