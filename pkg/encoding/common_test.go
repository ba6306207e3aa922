package encoding

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type testMessageJSON struct {
	Name string
	Age  uint
}

const (
	testMessageJSONString = `{"Name":"George","Age":67}`
	testMessageJSONName   = "George"
	testMessageJSONAge    = 67
)

func TestLoadAndUnmarshalNonExistentPath(t *testing.T) {
	if !os.IsNotExist(LoadAndUnmarshal("/this/does/not/exist", nil)) {
		t.Error("expected LoadAndUnmarshal to pass through non-existence errors")
	}
}

func TestLoadAndUnmarshalDirectory(t *testing.T) {
	if LoadAndUnmarshal(t.TempDir(), nil) == nil {
		t.Error("expected LoadAndUnmarshal error when loading a directory")
	}
}

func TestLoadAndUnmarshalUnmarshalFail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("unable to create temporary file: %v", err)
	}

	unmarshal := func(_ []byte) error {
		return errors.New("unmarshal failed")
	}
	if LoadAndUnmarshal(path, unmarshal) == nil {
		t.Error("expected LoadAndUnmarshal to return an error")
	}
}

func TestLoadAndUnmarshal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data")
	if err := os.WriteFile(path, []byte(testMessageJSONString), 0644); err != nil {
		t.Fatalf("unable to write temporary file: %v", err)
	}

	value := &testMessageJSON{}
	unmarshal := func(data []byte) error {
		return json.Unmarshal(data, value)
	}

	if err := LoadAndUnmarshal(path, unmarshal); err != nil {
		t.Fatalf("LoadAndUnmarshal failed: %v", err)
	}
	if value.Name != testMessageJSONName {
		t.Errorf("name mismatch: %q != %q", value.Name, testMessageJSONName)
	}
	if value.Age != testMessageJSONAge {
		t.Errorf("age mismatch: %d != %d", value.Age, testMessageJSONAge)
	}
}

func TestMarshalAndSaveMarshalFail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data")

	marshal := func() ([]byte, error) {
		return nil, errors.New("marshal failed")
	}
	if MarshalAndSave(path, marshal) == nil {
		t.Error("expected MarshalAndSave to return an error")
	}
}

func TestMarshalAndSaveOverDirectory(t *testing.T) {
	marshal := func() ([]byte, error) {
		return []byte{0}, nil
	}
	if MarshalAndSave(t.TempDir(), marshal) == nil {
		t.Error("expected MarshalAndSave to return an error when saving over a directory")
	}
}

func TestMarshalAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data")

	value := &testMessageJSON{Name: testMessageJSONName, Age: testMessageJSONAge}
	marshal := func() ([]byte, error) {
		return json.Marshal(value)
	}

	if err := MarshalAndSave(path, marshal); err != nil {
		t.Fatalf("MarshalAndSave failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unable to read saved contents: %v", err)
	}
	if string(contents) != testMessageJSONString {
		t.Errorf("marshaled contents do not match expected: %q != %q", string(contents), testMessageJSONString)
	}
}
