package flowlayout

import "fmt"

// Option is a functional option for configuring a Layout.
type Option func(*Layout) error

// WithProvider sets the configuration provider. Default is BaseProvider.
func WithProvider(p Provider) Option {
	return func(l *Layout) error {
		if p == nil {
			return fmt.Errorf("%w: nil provider", ErrInvalidOption)
		}
		l.provider = p
		return nil
	}
}

// WithScrollDirection sets the axis content scrolls along. Default is Vertical.
func WithScrollDirection(d ScrollDirection) Option {
	return func(l *Layout) error {
		if d != Vertical && d != Horizontal {
			return fmt.Errorf("%w: unknown scroll direction %d", ErrInvalidOption, d)
		}
		l.direction = d
		return nil
	}
}

// WithEstimatedItemSize sets the size used for dynamic lengths that have not
// been measured yet. Default is 50x50. Both sides must be positive.
func WithEstimatedItemSize(size Size) Option {
	return func(l *Layout) error {
		if err := checkEstimate(size); err != nil {
			return err
		}
		l.estimated = size
		return nil
	}
}

func checkEstimate(size Size) error {
	if size.Width <= 0 || size.Height <= 0 {
		return fmt.Errorf("%w: estimated item size must be positive, got %vx%v", ErrInvalidOption, size.Width, size.Height)
	}
	return nil
}

// WithFlipForRTL reports that the host mirrors frames horizontally in
// right-to-left locales. See Layout.FlipsHorizontally.
func WithFlipForRTL(flip bool) Option {
	return func(l *Layout) error {
		l.flipForRTL = flip
		return nil
	}
}

// WithAssertions makes count mismatches after a batch edit panic instead of
// scheduling a full rebuild.
func WithAssertions(enabled bool) Option {
	return func(l *Layout) error {
		l.assertions = enabled
		return nil
	}
}

// WithContentSizeHandler sets a function called whenever the content size
// differs from the last reported value.
func WithContentSizeHandler(fn func(Size)) Option {
	return func(l *Layout) error {
		l.onContentSize = fn
		return nil
	}
}
