package set

import (
	"encoding/json"

	"github.com/pkg/errors"
)

func (s *ListSet[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Items())
}

// UnmarshalJSON replaces the contents with the decoded array, repeated values collapse
func (s *ListSet[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return errors.Wrap(err, "decode set")
	}

	s.Clear()
	s.InsertSlice(items)

	return nil
}

func (s *HashSet[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Items())
}

func (s *HashSet[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return errors.Wrap(err, "decode set")
	}

	s.Clear()
	s.InsertSlice(items)

	return nil
}
