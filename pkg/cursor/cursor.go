// Package cursor 把分页位置编码成不透明的字符串.
//
// 复合游标携带 (创建时间毫秒, ID) 两个值, 用于按 (created_at DESC, id DESC) 排序的关注流;
// 单值游标只携带 ID, 用于按 ID 排序的全站流. 两种游标不能混用.
package cursor

import (
	"Orbit/pkg/errorx"

	"github.com/speps/go-hashids/v2"
)

const minLength = 12

var ErrInvalidCursor = errorx.New(errorx.InvalidCursor, "invalid cursor")

// Key 复合排序键
type Key struct {
	CreatedAt int64 // unix 毫秒
	ID        int64
}

type Codec struct {
	h *hashids.HashID
}

func New(salt string) (*Codec, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = minLength

	h, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, err
	}
	return &Codec{h: h}, nil
}

func (c *Codec) EncodeKey(k Key) (string, error) {
	s, err := c.h.EncodeInt64([]int64{k.CreatedAt, k.ID})
	if err != nil {
		return "", ErrInvalidCursor.With(err)
	}
	return s, nil
}

func (c *Codec) DecodeKey(token string) (Key, error) {
	nums, err := c.decode(token, 2)
	if err != nil {
		return Key{}, err
	}
	return Key{CreatedAt: nums[0], ID: nums[1]}, nil
}

func (c *Codec) EncodeID(id int64) (string, error) {
	s, err := c.h.EncodeInt64([]int64{id})
	if err != nil {
		return "", ErrInvalidCursor.With(err)
	}
	return s, nil
}

func (c *Codec) DecodeID(token string) (int64, error) {
	nums, err := c.decode(token, 1)
	if err != nil {
		return 0, err
	}
	return nums[0], nil
}

func (c *Codec) decode(token string, arity int) ([]int64, error) {
	if token == "" {
		return nil, ErrInvalidCursor
	}

	nums, err := c.h.DecodeInt64WithError(token)
	if err != nil {
		return nil, ErrInvalidCursor.With(err)
	}
	if len(nums) != arity {
		return nil, ErrInvalidCursor
	}
	for _, n := range nums {
		if n < 0 {
			return nil, ErrInvalidCursor
		}
	}
	return nums, nil
}
