package util

import (
	"sort"

	"golang.org/x/exp/constraints"
)

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns a map's keys in ascending order, for deterministic
// iteration.
func SortedKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func Min[A constraints.Ordered](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Max[A constraints.Ordered](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}

// MinOf returns the smallest element of a non-empty slice.
func MinOf[A constraints.Ordered](nums []A) A {
	res := nums[0]
	for _, v := range nums[1:] {
		res = Min(res, v)
	}
	return res
}

// MaxOf returns the largest element of a non-empty slice.
func MaxOf[A constraints.Ordered](nums []A) A {
	res := nums[0]
	for _, v := range nums[1:] {
		res = Max(res, v)
	}
	return res
}
