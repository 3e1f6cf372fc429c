package prompt

import (
	"context"
	"fmt"
)

// Script is a Driver that replays canned answers in order. Each answer must
// match the prompt kind: string for Input, bool for Confirm, int for Select
// and []int for MultiSelect.
type Script struct {
	Answers []any
	Infos   []string
	Asked   []string
}

var _ Driver = (*Script)(nil)

func (s *Script) next(message string) (any, error) {
	s.Asked = append(s.Asked, message)
	if len(s.Answers) == 0 {
		return nil, fmt.Errorf("prompt: no scripted answer for %q", message)
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer, nil
}

func (s *Script) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	answer, err := s.next(cfg.Message)
	if err != nil {
		return "", err
	}
	text, ok := answer.(string)
	if !ok {
		return "", fmt.Errorf("prompt: %q expects a string answer, got %T", cfg.Message, answer)
	}
	if text == "" {
		text = cfg.Default
	}
	if cfg.Validator != nil {
		if err := cfg.Validator(text); err != nil {
			return "", err
		}
	}
	return text, nil
}

func (s *Script) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	answer, err := s.next(cfg.Message)
	if err != nil {
		return false, err
	}
	yes, ok := answer.(bool)
	if !ok {
		return false, fmt.Errorf("prompt: %q expects a bool answer, got %T", cfg.Message, answer)
	}
	return yes, nil
}

func (s *Script) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	answer, err := s.next(cfg.Message)
	if err != nil {
		return 0, err
	}
	idx, ok := answer.(int)
	if !ok || idx < 0 || idx >= len(cfg.Options) {
		return 0, fmt.Errorf("prompt: %q has no option %v", cfg.Message, answer)
	}
	return idx, nil
}

func (s *Script) MultiSelect(ctx context.Context, cfg SelectConfig) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	answer, err := s.next(cfg.Message)
	if err != nil {
		return nil, err
	}
	indices, ok := answer.([]int)
	if !ok {
		return nil, fmt.Errorf("prompt: %q expects []int, got %T", cfg.Message, answer)
	}
	return indices, nil
}

func (s *Script) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.Infos = append(s.Infos, msg)
	return nil
}
