package modules

// slot returns the index of input chunk i, channel c within a packed
// input Frame of I chunks per channel, matching the channel-major,
// input-minor layout the engine's sampler builds (buf[i + c*I]).
func slot(i, c, I int) int { return i + c*I }
