package jsonutil

import "github.com/bytedance/sonic"

func Encode(v any) string {
	s, _ := sonic.MarshalString(v)
	return s
}

func Marshal(v any) []byte {
	b, _ := sonic.Marshal(v)
	return b
}

func Decode(data string, v any) error {
	return sonic.UnmarshalString(data, v)
}

func Unmarshal(data []byte, v any) error {
	return sonic.Unmarshal(data, v)
}
