package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// SelectedOptions は注文時点で選ばれたオプションのスナップショット。
// キーはオプショングループID、値は選択されたオプションID（単一でも配列に正規化する）。
type SelectedOptions map[string][]string

// クライアントは "l" のような単一値と ["cheese","egg"] の両方を送ってくる
func (s *SelectedOptions) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(SelectedOptions, len(raw))
	for groupID, v := range raw {
		var one string
		if err := json.Unmarshal(v, &one); err == nil {
			out[groupID] = []string{one}
			continue
		}

		var many []string
		if err := json.Unmarshal(v, &many); err == nil {
			out[groupID] = many
			continue
		}

		return fmt.Errorf("selected option %q: string or string array expected", groupID)
	}

	*s = out
	return nil
}

// jsonbカラムに保存する
func (s SelectedOptions) Value() (driver.Value, error) {
	if s == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string][]string(s))
}

func (s *SelectedOptions) Scan(value any) error {
	b, err := jsonbBytes(value)
	if err != nil {
		return err
	}
	if len(b) == 0 {
		*s = SelectedOptions{}
		return nil
	}
	return json.Unmarshal(b, s)
}

func jsonbBytes(value any) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported jsonb source type %T", value)
	}
}
