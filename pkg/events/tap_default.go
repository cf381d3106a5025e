//go:build !darwin

package events

import "go.uber.org/zap"

type stubAdapter struct {
	log *zap.Logger
}

func defaultAdapter(log *zap.Logger) Adapter {
	return stubAdapter{log: log}
}

func (a stubAdapter) Open(mask Mask, _ Handler) (Handle, error) {
	a.log.Debug("event tap requested on unsupported platform", zap.Uint64("mask", uint64(mask)))
	return nil, ErrUnsupportedPlatform
}
