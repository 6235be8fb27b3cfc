// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package message

// Sentinel errors in this package, if any are ever needed, are package-level
// errors.New values compared with ==. Decoding itself never fails that way:
// malformed input surfaces as IsComplete()&&!IsValid(), not as an error.
// There is currently no operation in this package that needs one.
