// Package sndfile is the file boundary for sample buffers: headerless
// 16-bit little-endian PCM ("raw") files and 16-bit PCM WAV files.
//
// Float samples are scaled as in most raw PCM tools: reading divides by
// 32768 and clamps to [-1,1], writing multiplies by 32767 and truncates
// toward zero. A round trip is therefore exact to within one LSB.
//
// The path-based raw loaders never fail: a missing, empty or unreadable
// file yields an empty buffer and a diagnostic on the package logger
// (see [SetLogger]). The io-based readers and all writers return errors.
package sndfile
