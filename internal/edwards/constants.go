// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package edwards

import (
	"math/big"

	"github.com/bytemare/curve420/internal/field"
)

const (
	// fieldPrime is 2^420 - 335, the order of the coordinate field.
	fieldPrime = "2707685248164858261307045101702230179137145581421695874189921465443966120903931272499975005961073806735733604454495675614232241"

	// groupOrder is the order L of the prime-order subgroup.
	groupOrder = "338460656020607282663380637712778772392143197677711984273740183501508577674026655281164768623743539442603492250355597371718719"

	// curveA is the twisted Edwards a constant, i.e. the Montgomery A constant + 2.
	curveA = "763975519699500577645754547835125169481986463482154078046572648671788968290548038674290307302429817161505744408446033521089604"

	// curveD is the twisted Edwards d constant, i.e. the Montgomery A constant - 2.
	curveD = "763975519699500577645754547835125169481986463482154078046572648671788968290548038674290307302429817161505744408446033521089600"

	baseX = "2554519045303036994902077297242990796196199161457630080356703041833906288977089421513471756737913123939108844302244613830350009"
	baseY = "1554004282195909523747673681974014268960308454695342458183393593582942692590987497223833263666951454840260505456918987028153736"

	// Cofactor is the ratio of the curve order to the prime subgroup order.
	Cofactor = 8
)

var (
	fp = field.NewField(field.String2Int(fieldPrime))

	order = field.String2Int(groupOrder)

	a = field.String2Int(curveA)
	d = field.String2Int(curveD)

	gx = field.String2Int(baseX)
	gy = field.String2Int(baseY)
)

// BaseField returns the field GF(2^420 - 335) the curve coordinates live in.
func BaseField() *field.Field {
	return fp
}

// A returns a copy of the twisted Edwards a constant.
func A() *big.Int {
	return new(big.Int).Set(a)
}

// D returns a copy of the twisted Edwards d constant.
func D() *big.Int {
	return new(big.Int).Set(d)
}

// Order returns the order L of the prime-order subgroup.
func Order() *big.Int {
	return new(big.Int).Set(order)
}
